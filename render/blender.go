package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opAdd     uint8 = 0x02
	opMax     uint8 = 0x03
	opScreen  uint8 = 0x04
)

// Blend flags
const (
	flagBg uint8 = 0x10 // Apply operation to background
	flagFg uint8 = 0x20 // Apply operation to foreground
)

// Pre-defined blend modes
const (
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)
	BlendAlpha   = BlendMode(opAlpha | flagBg | flagFg)
	BlendAdd     = BlendMode(opAdd | flagBg | flagFg)
	BlendMax     = BlendMode(opMax | flagBg | flagFg)
	BlendScreen  = BlendMode(opScreen | flagBg | flagFg)

	BlendFgOnly  = BlendMode(opReplace | flagFg) // Replace fg, keep bg
	BlendBgOnly  = BlendMode(opReplace | flagBg) // Replace bg, keep fg
	BlendAlphaBg = BlendMode(opAlpha | flagBg)   // Alpha bg, keep fg
	BlendAddBg   = BlendMode(opAdd | flagBg)     // Add bg, keep fg
	BlendMaxBg   = BlendMode(opMax | flagBg)     // Max bg, keep fg
)

// apply composites src over dst with the operation bits of mode
func (m BlendMode) apply(dst, src RGB, alpha float64) RGB {
	switch uint8(m) & 0x0F {
	case opAlpha:
		return Blend(dst, src, alpha)
	case opAdd:
		return Add(dst, src)
	case opMax:
		return Max(dst, src)
	case opScreen:
		return Screen(dst, src)
	default:
		return src
	}
}

func (m BlendMode) fg() bool { return uint8(m)&flagFg != 0 }
func (m BlendMode) bg() bool { return uint8(m)&flagBg != 0 }
