package utils

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
)

type clientIPKey struct{}

// TrustedProxies são as redes cujos cabeçalhos X-Forwarded-For e X-Real-IP
// são aceitos. Vazio significa confiar apenas no RemoteAddr.
type TrustedProxies []*net.IPNet

// ParseTrustedProxies aceita IPs soltos ou blocos CIDR
func ParseTrustedProxies(entries []string) (TrustedProxies, error) {
	proxies := make(TrustedProxies, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				return nil, fmt.Errorf("proxy confiável inválido: %q", entry)
			}
			bits := 8 * net.IPv6len
			if ip.To4() != nil {
				ip, bits = ip.To4(), 8*net.IPv4len
			}
			proxies = append(proxies, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}

		_, network, err := net.ParseCIDR(entry)
		if err != nil {
			return nil, fmt.Errorf("proxy confiável inválido: %q: %w", entry, err)
		}
		proxies = append(proxies, network)
	}

	return proxies, nil
}

func (t TrustedProxies) Contains(ip net.IP) bool {
	for _, network := range t {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// ResolveClientIP só lê os cabeçalhos de proxy quando o par da conexão é
// confiável. O X-Forwarded-For é percorrido da direita para a esquerda e o
// primeiro endereço fora dos proxies confiáveis é o cliente.
func (t TrustedProxies) ResolveClientIP(r *http.Request) string {
	peer := RemoteIP(r)
	if peer == "" || !t.Contains(net.ParseIP(peer)) {
		return peer
	}

	if forwarded := r.Header.Values("X-Forwarded-For"); len(forwarded) > 0 {
		hops := strings.Split(strings.Join(forwarded, ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			ip := net.ParseIP(strings.TrimSpace(hops[i]))
			if ip == nil {
				break
			}
			if !t.Contains(ip) {
				return ip.String()
			}
		}
	}

	if realIP := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); realIP != nil {
		return realIP.String()
	}

	return peer
}

// RemoteIP devolve o host do RemoteAddr, ou vazio quando não é um IP
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if net.ParseIP(host) == nil {
		return ""
	}

	return host
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIP devolve o IP resolvido pelo middleware de proxies confiáveis. Sem
// ele, usa o RemoteAddr e ignora cabeçalhos enviados pelo cliente.
func ClientIP(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPKey{}).(string); ok {
		return ip
	}
	return RemoteIP(r)
}
