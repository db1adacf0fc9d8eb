package emergency

import (
	"strings"

	"memoryaid/models"
)

// keywordTiers is evaluated strictly in order; the first tier containing a
// matching keyword determines the severity, and the scan stops there.
var keywordTiers = []struct {
	severity models.Severity
	keywords []string
}{
	{models.SeverityCritical, []string{"help", "emergency", "urgent", "ambulance", "hospital", "pain", "hurt", "fallen", "fall"}},
	{models.SeverityHigh, []string{"scared", "afraid", "confused", "lost", "dizzy", "cant breathe", "chest"}},
	{models.SeverityMedium, []string{"worried", "nervous", "uncomfortable", "unwell", "sick"}},
}

// DetectEmergency matches the transcript against the keyword tiers, falling
// back to the emotion signal when no keyword is present.
func (s *DefaultEmergencyService) DetectEmergency(transcript string, emotion models.Emotion) (bool, models.Severity) {
	lower := strings.ToLower(transcript)

	for _, tier := range keywordTiers {
		for _, keyword := range tier.keywords {
			if strings.Contains(lower, keyword) {
				return true, tier.severity
			}
		}
	}

	if emotion.IsDistressSignal() {
		return true, models.SeverityMedium
	}
	return false, ""
}
