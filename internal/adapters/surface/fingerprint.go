package surface

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/kin/internal/core/domain"
)

// Fingerprint hashes everything that affects how s is drawn.
// Equal scenes produce equal fingerprints.
func Fingerprint(s *domain.Scene) string {
	d := xxhash.New()
	var buf [8]byte
	num := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = d.Write(buf[:])
	}
	str := func(v string) {
		_, _ = d.WriteString(v)
		_, _ = d.Write([]byte{0})
	}

	str(s.Background)
	num(s.Margin)
	for _, l := range s.Lines {
		str(l.ParentID)
		str(l.ChildID)
		num(l.X1)
		num(l.Y1)
		num(l.X2)
		num(l.Y2)
		num(l.Opacity)
	}
	for _, n := range s.Nodes {
		str(n.ID)
		str(n.Visual.Fill)
		str(n.Visual.Name)
		str(n.Visual.Role)
		num(n.Left)
		num(n.Top)
		num(n.Width)
		num(n.Height)
		num(n.Opacity)
	}
	return strconv.FormatUint(d.Sum64(), 16)
}
