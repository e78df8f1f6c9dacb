package responses

type Report struct {
	Type          string   `json:"type"`
	From          string   `json:"from,omitempty"`
	To            string   `json:"to,omitempty"`
	Overview      string   `json:"overview"`
	Pros          []string `json:"pros,omitempty"`
	Cons          []string `json:"cons,omitempty"`
	AverageRating float64  `json:"averageRating"`
	TotalReviews  int      `json:"totalReviews"`
	Cached        bool     `json:"cached"`
}
