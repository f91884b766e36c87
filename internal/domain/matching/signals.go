package matching

import (
	"bytes"
	"cmp"
	"slices"

	"crm/internal/domain/entity"
)

// Signal is a deterministic comparison between two customers.
type Signal struct {
	Label  string
	Weight int
	Key    func(c *entity.Customer) string
}

// MaxConfidence caps the summed weight of matched signals.
const MaxConfidence = 100

// Signal labels reported with each candidate.
const (
	LabelEmail  = "exact email match"
	LabelPhone  = "exact phone match"
	LabelLineID = "shared messaging id"
	LabelName   = "normalized name match"
)

// Signals returns the signals in reporting order. A signal only matches when
// both normalized keys are non-empty and equal.
func Signals() []Signal {
	return []Signal{
		{Label: LabelEmail, Weight: 50, Key: func(c *entity.Customer) string { return NormalizeEmail(c.Email) }},
		{Label: LabelPhone, Weight: 45, Key: func(c *entity.Customer) string { return NormalizePhone(c.Phone) }},
		{Label: LabelLineID, Weight: 60, Key: func(c *entity.Customer) string { return NormalizeLineID(c.LineID) }},
		{Label: LabelName, Weight: 20, Key: func(c *entity.Customer) string { return NormalizeName(c.Name) }},
	}
}

// Keys are the normalized lookup keys of a customer. Empty keys never match.
type Keys struct {
	Email  string
	Phone  string
	LineID string
	Name   string
}

// KeysOf computes the normalized lookup keys of c.
func KeysOf(c *entity.Customer) Keys {
	return Keys{
		Email:  NormalizeEmail(c.Email),
		Phone:  NormalizePhone(c.Phone),
		LineID: NormalizeLineID(c.LineID),
		Name:   NormalizeName(c.Name),
	}
}

// IsEmpty reports whether no key can produce a match.
func (k Keys) IsEmpty() bool {
	return k.Email == "" && k.Phone == "" && k.LineID == "" && k.Name == ""
}

// Score compares candidate against reference and returns the capped confidence
// and the labels of every matched signal.
func Score(reference, candidate *entity.Customer) (int, []string) {
	score := 0
	labels := make([]string, 0, 4)
	for _, s := range Signals() {
		a, b := s.Key(reference), s.Key(candidate)
		if a == "" || a != b {
			continue
		}
		score += s.Weight
		labels = append(labels, s.Label)
	}

	return min(score, MaxConfidence), labels
}

// Rank scores every candidate against reference, drops those without any
// matched signal and sorts the rest by confidence descending, then most recent
// activity descending, then id ascending.
func Rank(reference *entity.Customer, candidates []*entity.Customer) []*entity.DuplicateCandidate {
	result := make([]*entity.DuplicateCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == reference.ID || c.IsMerged() {
			continue
		}
		score, labels := Score(reference, c)
		if score == 0 {
			continue
		}
		result = append(result, &entity.DuplicateCandidate{
			ReferenceID:    reference.ID,
			Candidate:      c.Summary(),
			Confidence:     score,
			Signals:        labels,
			LastActivityAt: c.ActivityAt(),
		})
	}

	slices.SortFunc(result, func(a, b *entity.DuplicateCandidate) int {
		if c := cmp.Compare(b.Confidence, a.Confidence); c != 0 {
			return c
		}
		if c := b.LastActivityAt.Compare(a.LastActivityAt); c != 0 {
			return c
		}

		return bytes.Compare(a.Candidate.ID[:], b.Candidate.ID[:])
	})

	return result
}

// Likelihood buckets a confidence score against the review threshold.
type Likelihood string

const (
	Likely   Likelihood = "likely"
	Possible Likelihood = "possible"
)

// DefaultReviewThreshold separates likely from possible duplicates.
const DefaultReviewThreshold = 70

// Classify returns Likely when confidence reaches threshold.
func Classify(confidence, threshold int) Likelihood {
	if confidence >= threshold {
		return Likely
	}

	return Possible
}
