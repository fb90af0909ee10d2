package pdump

import (
	"fmt"
	"strings"

	"github.com/gopacket/gopacket"
	"github.com/gopacket/gopacket/layers"
)

// Summarize renders a one-line description of an Ethernet frame for
// logs and interactive views. It never fails; frames that do not decode
// are described by length alone.
func Summarize(frame []byte) string {
	if len(frame) == 0 {
		return "empty frame"
	}

	pkt := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)

	var b strings.Builder
	fmt.Fprintf(&b, "len=%d", len(frame))
	if link := pkt.LinkLayer(); link != nil {
		fmt.Fprintf(&b, " %s", link.LayerType())
	}
	if network := pkt.NetworkLayer(); network != nil {
		flow := network.NetworkFlow()
		fmt.Fprintf(&b, " %s %s > %s", network.LayerType(), flow.Src(), flow.Dst())
	}
	if transport := pkt.TransportLayer(); transport != nil {
		flow := transport.TransportFlow()
		fmt.Fprintf(&b, " %s %s > %s", transport.LayerType(), flow.Src(), flow.Dst())
	}
	return b.String()
}
