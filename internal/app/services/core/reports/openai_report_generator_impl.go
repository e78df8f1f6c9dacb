package reports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"shifa-service/internal/app/config"
	"shifa-service/internal/app/contracts"
	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/constvars"
	"shifa-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type OpenAIReportGenerator struct {
	Config     config.OpenAI
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

var (
	openAIReportGenerator     *OpenAIReportGenerator
	onceOpenAIReportGenerator sync.Once
)

func NewOpenAIReportGenerator(openAIConfig config.OpenAI, logger *zap.Logger) contracts.ReportGenerator {
	onceOpenAIReportGenerator.Do(func() {
		openAIReportGenerator = &OpenAIReportGenerator{
			Config: openAIConfig,
			HTTPClient: &http.Client{
				Timeout: time.Duration(openAIConfig.TimeoutInSeconds) * time.Second,
			},
			Limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(openAIConfig.RequestsPerMinute)), 1),
			Log:     logger,
		}
	})
	return openAIReportGenerator
}

type chatCompletionRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (g *OpenAIReportGenerator) GenerateReport(ctx context.Context, reportType string, reviews []models.Review) (*models.ReportData, error) {
	if err := g.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrAIServiceTimeout(err)
	}

	payload := chatCompletionRequest{
		Model: g.Config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(reportType)},
			{Role: "user", Content: buildReviewDigest(reviews)},
		},
		ResponseFormat: &struct {
			Type string `json:"type"`
		}{Type: "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrAIServiceRequest(err)
	}

	url := strings.TrimRight(g.Config.BaseUrl, "/") + "/chat/completions"
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrAIServiceRequest(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	request.Header.Set(constvars.HeaderAuthorization, "Bearer "+g.Config.APIKey)

	response, err := g.HTTPClient.Do(request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrAIServiceTimeout(err)
		}
		return nil, exceptions.ErrAIServiceRequest(err)
	}
	defer response.Body.Close()

	if response.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrAIServiceRequest(fmt.Errorf("completion endpoint returned status %d", response.StatusCode))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(response.Body).Decode(&completion); err != nil {
		return nil, exceptions.ErrAIServiceMalformedResponse(err)
	}
	if len(completion.Choices) == 0 {
		return nil, exceptions.ErrAIServiceMalformedResponse(errors.New("completion contained no choices"))
	}

	var data models.ReportData
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &data); err != nil {
		return nil, exceptions.ErrAIServiceMalformedResponse(err)
	}

	// Rating figures come from the reviews themselves, never from the model.
	data.AverageRating = averageRating(reviews)
	data.TotalReviews = len(reviews)
	return &data, nil
}

func systemPrompt(reportType string) string {
	if reportType == constvars.ReportTypeComplaints {
		return "You analyze hospital patient reviews and summarize recurring complaints. " +
			"Respond with a JSON object containing: overview (string), cons (array of strings)."
	}
	return "You analyze hospital patient reviews and summarize staff performance. " +
		"Respond with a JSON object containing: overview (string), pros (array of strings), cons (array of strings)."
}

func buildReviewDigest(reviews []models.Review) string {
	if len(reviews) == 0 {
		return "No reviews were submitted in this period."
	}

	var sb strings.Builder
	for i := range reviews {
		fmt.Fprintf(&sb, "- rating %.1f", reviews[i].Rating)
		if reviews[i].Feedback != "" {
			fmt.Fprintf(&sb, ": %s", reviews[i].Feedback)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for i := range reviews {
		sum += reviews[i].Rating
	}
	return sum / float64(len(reviews))
}
