package api

// GenerateTasksRequest is the body of POST /api/generate-tasks.
type GenerateTasksRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateTasksResponse carries the generated task titles. The titles are
// candidates for the normal add path on the client; the endpoint has no
// bearing on sync state.
type GenerateTasksResponse struct {
	Tasks []string `json:"tasks"`
}
