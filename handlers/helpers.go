// Package handlers, HTTP request/response katmanıdır.
//
// Handler "ince" olmalı:
//  1. Request'i parse et (path değeri, query, JSON body)
//  2. Service'i çağır
//  3. Sonucu pkg.JSON / pkg.Error ile döndür
//
// Handler iş mantığı içermez, DB'ye doğrudan erişmez.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
)

// contextKey, context.Value için özel key tipi (string key çakışmasını önler).
type contextKey string

// AdminContextKey, AuthMiddleware'in doğruladığı admin kimliğini taşır.
const AdminContextKey contextKey = "admin"

// AdminFromContext, context'teki admin kimliğini döner.
func AdminFromContext(r *http.Request) (*models.AdminIdentity, bool) {
	admin, ok := r.Context().Value(AdminContextKey).(*models.AdminIdentity)
	return admin, ok
}

// maxBodyBytes, JSON body'ler için üst sınır.
const maxBodyBytes = 1 << 20

// decodeJSON, body'yi v'ye parse eder. Hata varsa 400 yazar ve false döner.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// deleted, silme işlemlerinin ortak yanıtı.
func deleted(w http.ResponseWriter) {
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
