package responses

type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TitleAr   string `json:"titleAr,omitempty"`
	Message   string `json:"message,omitempty"`
	MessageAr string `json:"messageAr,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}
