package kernels

import "strings"

// ChannelMask selects the channels a blur is permitted to modify.
// The zero value is treated as AllChannels by Options.
type ChannelMask uint8

const (
	ChannelR ChannelMask = 1 << iota
	ChannelG
	ChannelB
	ChannelA

	AllChannels = ChannelR | ChannelG | ChannelB | ChannelA
)

var channelLetters = [Channels]byte{'R', 'G', 'B', 'A'}

// Has reports whether channel index c (0=R .. 3=A) is enabled.
func (m ChannelMask) Has(c int) bool {
	return m&(1<<uint(c)) != 0
}

// All reports whether every channel is enabled.
func (m ChannelMask) All() bool {
	return m&AllChannels == AllChannels
}

// indices returns the enabled channel offsets in R, G, B, A order.
func (m ChannelMask) indices() []int {
	out := make([]int, 0, Channels)
	for c := 0; c < Channels; c++ {
		if m.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String returns the enabled channels as letters, e.g. "RGB".
func (m ChannelMask) String() string {
	var sb strings.Builder
	for c := 0; c < Channels; c++ {
		if m.Has(c) {
			sb.WriteByte(channelLetters[c])
		}
	}
	return sb.String()
}

// ParseChannels maps a letter code such as "RGBA" or "a" onto a mask.
// Letters may appear in any order and case; repeats are ignored.
func ParseChannels(s string) (ChannelMask, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, invalidConfig("empty channel list")
	}
	var m ChannelMask
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'R', 'r':
			m |= ChannelR
		case 'G', 'g':
			m |= ChannelG
		case 'B', 'b':
			m |= ChannelB
		case 'A', 'a':
			m |= ChannelA
		default:
			return 0, invalidConfig("unknown channel %q in %q", s[i], s)
		}
	}
	return m, nil
}
