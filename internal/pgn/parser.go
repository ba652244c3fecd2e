package pgn

import (
	"math"
	"regexp"
	"strconv"
)

// Turn is one numbered unit of movetext. Black is empty when the turn has
// no black move. Raw is the header's digits as written; Number saturates at
// math.MaxInt when Raw does not fit an int.
type Turn struct {
	Number int
	Raw    string
	White  string
	Black  string
}

// HasBlack reports whether the turn carries a black move.
func (t Turn) HasBlack() bool {
	return t.Black != ""
}

var (
	turnRe   = regexp.MustCompile(`(\d+)\.\s*(\S+)(?:\s+(\S+))?`)
	headerRe = regexp.MustCompile(`^\d+\.`)
	numberRe = regexp.MustCompile(`\d+\.`)
)

// ScanTurns extracts "<n>. white [black]" units from movetext in order.
// A black token that is itself a turn header is not consumed; the next scan
// starts right after the white token. Text outside a match is skipped.
func ScanTurns(text string) []Turn {
	var turns []Turn
	pos := 0
	for pos < len(text) {
		m := turnRe.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			break
		}
		number := text[pos+m[2] : pos+m[3]]
		white := text[pos+m[4] : pos+m[5]]
		end := pos + m[1]

		var black string
		if m[6] >= 0 {
			black = text[pos+m[6] : pos+m[7]]
			if headerRe.MatchString(black) {
				black = ""
				end = pos + m[5]
			}
		}
		pos = end

		n, err := strconv.Atoi(number)
		if err != nil {
			n = math.MaxInt
		}
		turns = append(turns, Turn{Number: n, Raw: number, White: white, Black: black})
	}
	return turns
}

// CountHeaders returns the number of "<n>." turn headers in text.
func CountHeaders(text string) int {
	return len(numberRe.FindAllStringIndex(text, -1))
}
