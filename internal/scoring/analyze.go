package scoring

import "math"

// Tier names the recommendation bucket selected for a score.
type Tier string

const (
	TierHighlyRecommended           Tier = "highly_recommended"
	TierRecommendedWithReservations Tier = "recommended_with_reservations"
	TierNotRecommended              Tier = "not_recommended"
)

const (
	highlyRecommendedThreshold = 80.0
	recommendedThreshold       = 60.0
	minimumTimeSpentMinutes    = 1.0
)

// Bucket is the canned text attached to a tier.
type Bucket struct {
	Recommendation      string
	Strengths           []string
	AreasForImprovement []string
}

var buckets = map[Tier]Bucket{
	TierHighlyRecommended: {
		Recommendation: "Highly recommended for the next interview round. Excellent technical skills and strong alignment with job requirements.",
		Strengths: []string{
			"Excellent problem-solving abilities",
			"Strong technical knowledge",
			"Good time management skills",
			"High accuracy in responses",
		},
		AreasForImprovement: []string{
			"Continue expanding knowledge in emerging technologies",
			"Practice advanced problem-solving scenarios",
		},
	},
	TierRecommendedWithReservations: {
		Recommendation: "Recommended for next interview round with some reservations. Good technical foundation with room for improvement.",
		Strengths: []string{
			"Good technical foundation",
			"Decent problem-solving skills",
			"Shows potential for growth",
		},
		AreasForImprovement: []string{
			"Strengthen core technical concepts",
			"Improve time management",
			"Practice more complex problem scenarios",
		},
	},
	TierNotRecommended: {
		Recommendation: "Not recommended for current role. Consider for junior positions or suggest additional training.",
		Strengths: []string{
			"Shows willingness to learn",
			"Basic understanding of concepts",
		},
		AreasForImprovement: []string{
			"Significant improvement needed in technical skills",
			"Focus on fundamental concepts",
			"Consider additional training or certification",
		},
	},
}

// Analysis is the outcome of the rule table for a single submission.
type Analysis struct {
	TimeEfficiency      float64
	SkillsMatch         float64
	Tier                Tier
	Recommendation      string
	Strengths           []string
	AreasForImprovement []string
}

// Analyze derives time efficiency and skills match and picks the recommendation tier by score.
func Analyze(score, timeLimitMinutes, timeSpentMinutes float64) Analysis {
	efficiency := TimeEfficiency(timeLimitMinutes, timeSpentMinutes)
	tier := TierFor(score)
	bucket := BucketFor(tier)

	return Analysis{
		TimeEfficiency:      efficiency,
		SkillsMatch:         math.Min(100, (score+efficiency)/2),
		Tier:                tier,
		Recommendation:      bucket.Recommendation,
		Strengths:           bucket.Strengths,
		AreasForImprovement: bucket.AreasForImprovement,
	}
}

// TimeEfficiency is the allotted-to-consumed time ratio as a percentage, capped at 100.
// Time spent below one minute counts as one minute.
func TimeEfficiency(timeLimitMinutes, timeSpentMinutes float64) float64 {
	spent := math.Max(timeSpentMinutes, minimumTimeSpentMinutes)
	return math.Min(100, 100*timeLimitMinutes/spent)
}

// TierFor maps a score onto its tier; lower bounds are inclusive.
func TierFor(score float64) Tier {
	switch {
	case score >= highlyRecommendedThreshold:
		return TierHighlyRecommended
	case score >= recommendedThreshold:
		return TierRecommendedWithReservations
	default:
		return TierNotRecommended
	}
}

// BucketFor returns a copy of the canned text for tier.
func BucketFor(tier Tier) Bucket {
	bucket, ok := buckets[tier]
	if !ok {
		bucket = buckets[TierNotRecommended]
	}
	return Bucket{
		Recommendation:      bucket.Recommendation,
		Strengths:           append([]string(nil), bucket.Strengths...),
		AreasForImprovement: append([]string(nil), bucket.AreasForImprovement...),
	}
}
