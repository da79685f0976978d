package ipnet

import (
	"net/netip"
)

// HostPrefix turns an address into the prefix containing only that address,
// for example 1.2.3.4/32 or 2001:db8::1/128.
func HostPrefix(ip netip.Addr) netip.Prefix {
	return netip.PrefixFrom(ip, ip.BitLen())
}

// DescribePrefixOrIP is similar to [netip.Prefix.String] but prints out
// the IP directly if the input range only contains one IP.
func DescribePrefixOrIP(p netip.Prefix) string {
	if p.IsSingleIP() {
		return p.Addr().String()
	}
	return p.Masked().String()
}
