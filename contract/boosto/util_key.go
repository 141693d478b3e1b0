package boosto

var (
	tagName        = byte(0x01)
	tagSymbol      = byte(0x02)
	tagTotalSupply = byte(0x03)
	tagAdmin       = byte(0x04)
	tagICO         = byte(0x05)
	tagICOSeq      = byte(0x06)
	tagMinAmount   = byte(0x07)
	tagBalance     = byte(0x10)
	tagWhiteList   = byte(0x11)
)

// Decimals is the number of the fractional digits of the token
const Decimals = 18
