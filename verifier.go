package dlog

// Verify checks the proof against y and base with the default scheme.
func (p *Proof) Verify(sid string, pid int32, y, base Point) bool {
	return defaultScheme.Verify(p, sid, pid, y, base)
}

// Verify reports whether s * base == t + c * y for c derived from
// (sid, pid, [base, y, t]). Any malformed input is a failed verification.
func (s *Scheme) Verify(p *Proof, sid string, pid int32, y, base Point) bool {
	if p == nil || p.T == nil || p.S == nil || y == nil || base == nil {
		return false
	}
	c := base.Curve()
	if !sameCurve(c, y, p.T, p.S) {
		return false
	}

	challenge, err := s.DeriveChallenge(sid, pid, base, y, p.T)
	if err != nil {
		return false
	}

	lhs := base.Mul(p.S)
	rhs := p.T.Add(y.Mul(challenge))
	return lhs.Equal(rhs)
}
