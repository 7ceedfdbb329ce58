package render

type diffState int

const (
	statePlain diffState = iota // ordinary text
	stateSign                   // saw + or -, waiting for a digit
	stateToken                  // inside a sign followed by digits
)

// HighlightDiff splits text into runs, recoloring every token made of a sign
// followed by one or more ASCII digits: PlusFG for "+", MinusFG for "-".
// A sign without a digit after it stays plain. Scanning is a single greedy
// pass; tokens never overlap.
func HighlightDiff(text string, base Style) []Span {
	var spans []Span
	emit := func(s string, style Style) {
		if s != "" {
			spans = append(spans, Span{Text: s, Style: style})
		}
	}

	state := statePlain
	runStart := 0 // start of the pending run
	signAt := 0   // position of the sign while in stateSign

	for i, r := range text {
		switch state {
		case statePlain:
			if isSign(r) {
				state, signAt = stateSign, i
			}
		case stateSign:
			switch {
			case isDigit(r):
				emit(text[runStart:signAt], base)
				runStart = signAt
				state = stateToken
			case isSign(r):
				signAt = i
			default:
				state = statePlain
			}
		case stateToken:
			if isDigit(r) {
				continue
			}
			emit(text[runStart:i], tokenStyle(text[runStart], base))
			runStart = i
			if isSign(r) {
				state, signAt = stateSign, i
			} else {
				state = statePlain
			}
		}
	}

	if state == stateToken {
		emit(text[runStart:], tokenStyle(text[runStart], base))
	} else {
		emit(text[runStart:], base)
	}
	return spans
}

func tokenStyle(sign byte, base Style) Style {
	if sign == '+' {
		return Style{Fg: PlusFG, Bg: base.Bg}
	}
	return Style{Fg: MinusFG, Bg: base.Bg}
}

func isSign(r rune) bool  { return r == '+' || r == '-' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
