package value_objects

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Conclusion is the analyst's verdict on a lot analysis.
type Conclusion string

const (
	ConclusionApproved Conclusion = "APPROVED"
	ConclusionRejected Conclusion = "REJECTED"
)

// ValidConclusions lists the accepted verdicts.
var ValidConclusions = []Conclusion{ConclusionApproved, ConclusionRejected}

// ParseConclusion normalizes and validates a verdict string.
func ParseConclusion(s string) (Conclusion, error) {
	c := Conclusion(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range ValidConclusions {
		if c == valid {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid conclusion: %s (must be APPROVED or REJECTED)", s)
}

func (c Conclusion) String() string   { return string(c) }
func (c Conclusion) IsApproved() bool { return c == ConclusionApproved }
func (c Conclusion) IsRejected() bool { return c == ConclusionRejected }

func (c Conclusion) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *Conclusion) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseConclusion(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
