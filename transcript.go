package dlog

import (
	"github.com/gtank/merlin"
)

const (
	DLOG_TRANSCRIPT_DOMAIN_TAG = "dlog_proof_transcript"
)

// TranscriptChallenger derives the challenge from a merlin transcript instead
// of a plain hash. Every message is length-prefixed and labelled, so the
// encoding of sid and pid cannot run into the points.
type TranscriptChallenger struct {
	Label string
}

func NewTranscriptChallenger() *TranscriptChallenger {
	return &TranscriptChallenger{Label: DLOG_TRANSCRIPT_DOMAIN_TAG}
}

func (tc *TranscriptChallenger) Challenge(sid string, pid int32, points []Point) (Scalar, error) {
	c, err := pointsCurve(points)
	if err != nil {
		return nil, err
	}

	t := InitialTranscript(tc.Label)
	DlogDomainSep(sid, pid, t)
	for _, p := range points {
		AppendPoint("point", p, t)
	}
	return ChallengeScalar("c", c, t)
}

// InitialTranscript starts a transcript under label, normally DLOG_TRANSCRIPT_DOMAIN_TAG.
func InitialTranscript(label string) *merlin.Transcript {
	return merlin.NewTranscript(label)
}

func DlogDomainSep(sid string, pid int32, t *merlin.Transcript) *merlin.Transcript {
	appendBytes([]byte("dom-sep"), []byte("dlog v1"), t)
	appendBytes([]byte("sid"), []byte(sid), t)
	appendBytes([]byte("pid"), int32ToBytes(pid), t)
	return t
}

func AppendPoint(label string, p Point, t *merlin.Transcript) {
	appendBytes([]byte(label), p.Bytes(), t)
}

// ChallengeScalar extracts 64 bytes so the reduction bias is negligible on every curve.
func ChallengeScalar(label string, c Curve, t *merlin.Transcript) (Scalar, error) {
	data := t.ExtractBytes([]byte(label), 64)
	return challengeScalar(c, data)
}

func appendBytes(field, data []byte, t *merlin.Transcript) {
	t.AppendMessage(field, data)
}
