package dlog

// Proof is a non-interactive Schnorr proof of knowledge of x with y = x * base.
//
// T is the commitment r * base and S the response r + x * c. The proof
// carries no context: sid and pid are bound only through the challenge, so a
// verifier must already know the pair the proof was made for.
type Proof struct {
	T Point
	S Scalar
}

// Prove proves knowledge of x for y = x * base with the default scheme.
// The relation between x and y is not checked; a wrong x yields a proof that
// does not verify.
func Prove(sid string, pid int32, x Scalar, y, base Point) (*Proof, error) {
	return defaultScheme.Prove(sid, pid, x, y, base)
}

func (s *Scheme) Prove(sid string, pid int32, x Scalar, y, base Point) (*Proof, error) {
	if x == nil || y == nil || base == nil {
		return nil, ErrNilInput
	}
	c := base.Curve()
	if !sameCurve(c, x, y) {
		return nil, ErrCurveMismatch
	}

	r, err := s.nonce(c, sid, pid, x)
	if err != nil {
		return nil, err
	}
	t := base.Mul(r)

	challenge, err := s.DeriveChallenge(sid, pid, base, y, t)
	if err != nil {
		return nil, err
	}

	return &Proof{T: t, S: r.Add(x.Mul(challenge))}, nil
}
