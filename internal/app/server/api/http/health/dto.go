package health

// Output represents the output for health check endpoint
type Output struct {
	Body Response
}

// Response represents the health check response
type Response struct {
	Status    string `json:"status" example:"OK" doc:"Health status of the service"`
	Materials int    `json:"materials" example:"11" doc:"Number of stored service materials"`
	Uptime    string `json:"uptime" example:"1h2m3s" doc:"Time since the server started"`
}
