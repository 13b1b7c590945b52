package domain

import "fmt"

// SalesChannel is the closed set of channel filters accepted by every
// reporting operation. ChannelAll disables the channel predicate.
type SalesChannel string

const (
	ChannelAll       SalesChannel = "all"
	ChannelRetail    SalesChannel = "retail"
	ChannelWholesale SalesChannel = "wholesale"
)

// ParseSalesChannel validates a raw channel value. An empty value defaults
// to ChannelAll; anything outside the known set is rejected instead of
// silently matching zero rows in the store.
func ParseSalesChannel(raw string) (SalesChannel, error) {
	switch SalesChannel(raw) {
	case "":
		return ChannelAll, nil
	case ChannelAll, ChannelRetail, ChannelWholesale:
		return SalesChannel(raw), nil
	}

	return "", fmt.Errorf("unknown sales channel: %q", raw)
}

func (c SalesChannel) String() string {
	return string(c)
}
