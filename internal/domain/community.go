package domain

import "time"

// CommunityPost is one entry of the global, newest-first community feed.
// Posts are never edited or deleted.
type CommunityPost struct {
	Author   string    `json:"author"`
	Text     string    `json:"text"`
	PostedAt time.Time `json:"postedAt"`
}

// Announcement is a gym-wide notice. IDs are stable and assigned at
// creation so announcements can be edited in place.
type Announcement struct {
	ID       int       `json:"id"`
	Text     string    `json:"text"`
	PostedAt time.Time `json:"postedAt"`
}

// ChallengeParticipant is one leaderboard row of a challenge.
type ChallengeParticipant struct {
	MemberID int     `json:"memberId"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
}

// Challenge is a read-only leaderboard. Challenges come from seed data;
// there is no handler to join or update one.
type Challenge struct {
	Name         string                 `json:"name"`
	Metric       string                 `json:"metric"` // e.g. "reps", "distance"
	Participants []ChallengeParticipant `json:"participants"`
}
