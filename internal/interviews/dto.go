package interviews

import "time"

type createRequest struct {
	Title           string `json:"title"`
	Role            string `json:"role"`
	ExperienceLevel string `json:"experienceLevel"`
}

// Response is the JSON shape of an interview.
type Response struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Title           string    `json:"title"`
	Role            string    `json:"role"`
	ExperienceLevel string    `json:"experienceLevel"`
	Questions       string    `json:"questions"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toResponse(i Interview) Response {
	return Response{
		ID:              i.ID,
		UserID:          i.UserID,
		Title:           i.Title,
		Role:            i.Role,
		ExperienceLevel: i.ExperienceLevel,
		Questions:       i.Questions,
		CreatedAt:       i.CreatedAt,
	}
}
