package models

import "time"

// AchievementPostRequest is the body accepted by create and update.
type AchievementPostRequest struct {
	Skill        string       `json:"skill"`
	Title        string       `json:"title"`
	TemplateType TemplateType `json:"templateType"`
	TemplateData TemplateData `json:"templateData"`
}

// CommentRequest is the body accepted by comment create and update.
type CommentRequest struct {
	Content string `json:"content"`
}

// AchievementPostDto is the JSON projection returned to clients.
type AchievementPostDto struct {
	ID              string       `json:"id"`
	AuthorID        string       `json:"authorId"`
	AuthorName      string       `json:"authorName"`
	PostedDate      time.Time    `json:"postedDate"`
	UpdatedAt       time.Time    `json:"updatedAt"`
	ProfileImageURL string       `json:"profileImageUrl"`
	Skill           string       `json:"skill"`
	Title           string       `json:"title"`
	TemplateType    TemplateType `json:"templateType"`
	TemplateData    TemplateData `json:"templateData"`
	LikedUserIDs    []string     `json:"likedUserIds"`
	NoOfLikes       int          `json:"noOfLikes"`
	Comments        []CommentDto `json:"comments"`
}

// CommentDto is the JSON projection of an embedded comment.
type CommentDto struct {
	ID              string    `json:"id"`
	AuthorID        string    `json:"authorId"`
	AuthorName      string    `json:"authorName"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"createdAt"`
	ProfileImageURL string    `json:"profileImageUrl"`
}

// UploadResponse is returned by the upload endpoint.
type UploadResponse struct {
	URL string `json:"url"`
}
