package models

// Like records that likerId expressed interest in likedId.
// SuperLike is display-only; the ranking core never reads it.
type Like struct {
	LikerID     string `dynamodbav:"likerId" json:"likerId"`
	LikedID     string `dynamodbav:"likedId" json:"likedId"`
	IsSuperLike bool   `dynamodbav:"isSuperLike,omitempty" json:"isSuperLike,omitempty"`
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"`
}

// Pass records that userId swiped past targetId.
type Pass struct {
	UserID    string `dynamodbav:"userId" json:"userId"`
	TargetID  string `dynamodbav:"targetId" json:"targetId"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// Match joins two users after a mutual like.
type Match struct {
	MatchID   string `dynamodbav:"matchId" json:"matchId"`
	UserA     string `dynamodbav:"userA" json:"userA"`
	UserB     string `dynamodbav:"userB" json:"userB"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// Table names for interaction data
const (
	LikesTable   = "Likes"
	PassesTable  = "Passes"
	MatchesTable = "Matches"
)

// GSI names on the Likes table
const (
	LikesByLikerIndex = "likerId-index"
	LikesByLikedIndex = "likedId-index"
)
