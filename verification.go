package onboard

// verificationCodeLength is fixed by the backend's emailed codes.
const verificationCodeLength = 6

// NormalizeCode reduces raw code input to at most six digits. It mirrors the
// keystroke filter of the verification input: non-digits are dropped and any
// overflow is truncated. Normalization never rejects; length enforcement
// happens at submission.
func NormalizeCode(raw string) string {
	out := make([]byte, 0, verificationCodeLength)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c < '0' || c > '9' {
			continue
		}
		out = append(out, c)
		if len(out) == verificationCodeLength {
			break
		}
	}
	return string(out)
}
