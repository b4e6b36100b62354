package ratelimit

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

type clientIPKey struct{}

// IPResolver, isteğin client IP'sini bulur.
//
// X-Forwarded-For ve X-Real-IP sadece bağlantı güvenilen bir proxy'den
// (TRUSTED_PROXIES) geliyorsa okunur. Aksi halde istemci bu header'larla
// limitleri ve like tekrar kontrolünü atlatabilirdi.
type IPResolver struct {
	trusted []netip.Prefix
}

// NewIPResolver, CIDR veya tek IP listesinden resolver kurar.
// Boş liste → header'lar hiç okunmaz, RemoteAddr kullanılır.
func NewIPResolver(proxies []string) (*IPResolver, error) {
	r := &IPResolver{}
	for _, p := range proxies {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.Contains(p, "/") {
			addr, err := netip.ParseAddr(p)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", p, err)
			}
			r.trusted = append(r.trusted, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
			continue
		}
		prefix, err := netip.ParsePrefix(p)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", p, err)
		}
		r.trusted = append(r.trusted, prefix.Masked())
	}
	return r, nil
}

func (r *IPResolver) isTrusted(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, p := range r.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// Resolve, client IP'sini döner. Güvenilen proxy'den gelen isteklerde
// X-Forwarded-For sağdan sola yürünür; güvenilmeyen ilk adres client'tır.
func (r *IPResolver) Resolve(req *http.Request) string {
	remote := remoteHost(req.RemoteAddr)
	addr, err := netip.ParseAddr(remote)
	if err != nil || !r.isTrusted(addr) {
		return remote
	}

	hops := strings.Split(strings.Join(req.Header.Values("X-Forwarded-For"), ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		if !r.isTrusted(hop) {
			return hop.Unmap().String()
		}
	}

	if xri, err := netip.ParseAddr(strings.TrimSpace(req.Header.Get("X-Real-IP"))); err == nil {
		return xri.Unmap().String()
	}
	return remote
}

// Middleware, çözülen IP'yi context'e koyar; ExtractIP oradan okur.
func (r *IPResolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := context.WithValue(req.Context(), clientIPKey{}, r.Resolve(req))
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// ExtractIP, IPResolver middleware'inin bulduğu IP'yi döner.
// Middleware yoksa RemoteAddr'ın host kısmı kullanılır; header'lara bakılmaz.
func ExtractIP(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPKey{}).(string); ok && ip != "" {
		return ip
	}
	return remoteHost(r.RemoteAddr)
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
