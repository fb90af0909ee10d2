// Package pdump writes device frames to pcap capture streams and
// renders one-line frame summaries.
//
// A Writer owns the pcap framing only. The caller brings any io.Writer
// and keeps responsibility for file naming, rotation and sync.
package pdump

import (
	"io"
	"time"

	"github.com/gopacket/gopacket"
	"github.com/gopacket/gopacket/layers"
	"github.com/gopacket/gopacket/pcapgo"
	"go.uber.org/zap"

	"github.com/wippyai/ethdev/errors"
)

// Writer streams captured frames into pcap format.
// It is not safe for concurrent use.
type Writer struct {
	pw      *pcapgo.Writer
	snaplen uint32
}

// NewWriter wraps w in a pcap stream and writes the file header. snaplen
// caps the bytes stored per frame; longer frames are truncated on write
// with the original length kept in the per-packet record.
func NewWriter(w io.Writer, snaplen uint32) (*Writer, error) {
	if snaplen == 0 {
		return nil, errors.BadArgument("pdump.NewWriter", "zero snaplen")
	}
	pw := pcapgo.NewWriter(w)
	if err := pw.WriteFileHeader(snaplen, layers.LinkTypeEthernet); err != nil {
		return nil, errors.Wrap("pdump.NewWriter", errors.KindCallFailed, err, "write file header")
	}
	Logger().Debug("capture stream opened", zap.Uint32("snaplen", snaplen))
	return &Writer{pw: pw, snaplen: snaplen}, nil
}

// Snaplen returns the per-frame byte cap.
func (w *Writer) Snaplen() uint32 {
	return w.snaplen
}

// WriteFrame records one frame captured at ts.
func (w *Writer) WriteFrame(ts time.Time, frame []byte) error {
	capture := frame
	if uint32(len(capture)) > w.snaplen {
		capture = capture[:w.snaplen]
	}
	ci := gopacket.CaptureInfo{
		Timestamp:     ts,
		CaptureLength: len(capture),
		Length:        len(frame),
	}
	if err := w.pw.WritePacket(ci, capture); err != nil {
		return errors.Wrap("pdump.WriteFrame", errors.KindCallFailed, err, "write packet record")
	}
	return nil
}
