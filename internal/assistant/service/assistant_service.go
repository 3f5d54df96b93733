package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nexter-app/nexter-backend/internal/assistant/domain"
	"github.com/nexter-app/nexter-backend/internal/assistant/repository"
)

// Role tracks recognized by the analyzer.
const (
	trackMarketing   = "marketing"
	trackDevelopment = "development"
	trackGeneral     = "general"
)

// AssistantService normalizes uploads and derives analyses from them.
// The derivation is deterministic: same upload and role always yield
// the same stub, and the analysis id is fixed on first analyze.
type AssistantService struct {
	store repository.Store
}

func NewAssistantService(store repository.Store) *AssistantService {
	return &AssistantService{store: store}
}

// CreateUpload normalizes the payload into an Upload record tagged by
// kind and stores it.
func (s *AssistantService) CreateUpload(ctx context.Context, req *domain.CreateUploadRequest) (*domain.Upload, error) {
	upload := &domain.Upload{
		ID:        uuid.New().String(),
		Kind:      req.Kind,
		CreatedAt: time.Now().UTC(),
	}

	switch req.Kind {
	case domain.KindFile:
		upload.Name = strings.TrimSpace(req.FileName)
		if upload.Name == "" {
			upload.Name = "업로드한 파일"
		}
		upload.MimeType = req.MimeType
		upload.Size = req.Size

	case domain.KindLink:
		normalized := normalizeLink(req.URL)
		upload.SourceURL = normalized
		upload.Name = hostnameOf(normalized)

	case domain.KindText:
		upload.Name = strings.TrimSpace(req.Title)
		if upload.Name == "" {
			upload.Name = "자유 텍스트"
		}
		upload.RawContent = req.Content
		upload.ContentPreview = previewOf(req.Content)

	default:
		return nil, domain.ErrInvalidKind
	}

	if err := s.store.SaveUpload(ctx, upload); err != nil {
		return nil, err
	}
	return upload, nil
}

// AnalyzeUpload derives a project stub and metadata for the upload.
// A second analyze for the same upload returns the stored record, so
// the analysis id is stable.
func (s *AssistantService) AnalyzeUpload(ctx context.Context, uploadID, userRole string) (*domain.Analysis, error) {
	upload, err := s.store.GetUpload(ctx, uploadID)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GetAnalysisByUpload(ctx, uploadID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrAnalysisNotFound) {
		// A failed lookup must not mint a new analysis id over one
		// that may already be stored.
		return nil, err
	}

	track := roleTrack(userRole)
	analysis := &domain.Analysis{
		ID:       uuid.New().String(),
		UploadID: upload.ID,
		Project: domain.ProjectStub{
			Title:    titleFor(upload),
			Summary:  summaryFor(upload, track),
			Tags:     tagsFor(track),
			Category: categoryFor(track),
		},
		Metadata: domain.AnalysisMetadata{
			Format:                 formatFor(upload),
			Type:                   typeFor(upload.Kind),
			SourceURL:              upload.SourceURL,
			Confidence:             confidenceFor(upload.Kind, track),
			RecommendedNextActions: nextActionsFor(track),
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.SaveAnalysis(ctx, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// GetAnalysis returns the stored analysis for an upload id.
func (s *AssistantService) GetAnalysis(ctx context.Context, uploadID string) (*domain.Analysis, error) {
	return s.store.GetAnalysisByUpload(ctx, uploadID)
}

// normalizeLink prepends https:// when the scheme is missing.
func normalizeLink(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	if !strings.Contains(raw, "://") {
		return "https://" + raw
	}
	return raw
}

func hostnameOf(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Hostname() == "" {
		return link
	}
	return u.Hostname()
}

// previewOf truncates text content to PreviewLimit runes, marking the
// cut with an ellipsis. The preview never exceeds the original length.
func previewOf(content string) string {
	runes := []rune(strings.TrimSpace(content))
	if len(runes) <= domain.PreviewLimit {
		return string(runes)
	}
	return string(runes[:domain.PreviewLimit]) + "…"
}

// roleTrack buckets the free-text role by keyword.
func roleTrack(role string) string {
	r := strings.ToLower(role)
	switch {
	case strings.Contains(r, "마케팅") || strings.Contains(r, "마케터") || strings.Contains(r, "marketing"):
		return trackMarketing
	case strings.Contains(r, "개발") || strings.Contains(r, "엔지니어") ||
		strings.Contains(r, "developer") || strings.Contains(r, "engineer") ||
		strings.Contains(r, "development"):
		return trackDevelopment
	default:
		return trackGeneral
	}
}

func titleFor(upload *domain.Upload) string {
	switch upload.Kind {
	case domain.KindLink:
		return fmt.Sprintf("%s 프로젝트 분석", upload.Name)
	case domain.KindFile:
		name := upload.Name
		if dot := strings.LastIndex(name, "."); dot > 0 {
			name = name[:dot]
		}
		return name
	default:
		return upload.Name
	}
}

func summaryFor(upload *domain.Upload, track string) string {
	if upload.Kind == domain.KindText && upload.ContentPreview != "" {
		return upload.ContentPreview
	}

	source := map[string]string{
		domain.KindFile: "업로드한 자료",
		domain.KindLink: "공유한 링크",
	}[upload.Kind]

	switch track {
	case trackMarketing:
		return fmt.Sprintf("%s에서 캠페인 기획과 채널 운영 경험이 돋보이는 프로젝트입니다.", source)
	case trackDevelopment:
		return fmt.Sprintf("%s에서 기능 설계와 구현 과정이 잘 드러나는 프로젝트입니다.", source)
	default:
		return fmt.Sprintf("%s를 바탕으로 정리한 프로젝트입니다.", source)
	}
}

func tagsFor(track string) []string {
	switch track {
	case trackMarketing:
		return []string{"브랜딩", "콘텐츠", "캠페인"}
	case trackDevelopment:
		return []string{"설계", "구현", "협업"}
	default:
		return []string{"기획", "문서화"}
	}
}

func categoryFor(track string) string {
	switch track {
	case trackMarketing:
		return "브랜드 마케팅"
	case trackDevelopment:
		return "백엔드"
	default:
		return "기타"
	}
}

func formatFor(upload *domain.Upload) string {
	switch upload.Kind {
	case domain.KindLink:
		return "링크"
	case domain.KindText:
		return "텍스트"
	default:
		switch {
		case strings.HasPrefix(upload.MimeType, "image/"):
			return "이미지"
		case strings.Contains(upload.MimeType, "pdf"):
			return "PDF"
		default:
			return "문서"
		}
	}
}

func typeFor(kind string) string {
	// The SPA's project model distinguishes file/link/project; text
	// uploads become plain projects.
	if kind == domain.KindText {
		return "project"
	}
	return kind
}

func confidenceFor(kind, track string) float64 {
	base := map[string]float64{
		domain.KindFile: 0.78,
		domain.KindLink: 0.66,
		domain.KindText: 0.72,
	}[kind]
	if track != trackGeneral {
		base += 0.08
	}
	return base
}

func nextActionsFor(track string) []string {
	switch track {
	case trackMarketing:
		return []string{
			"핵심 성과 지표(도달, 전환)를 수치로 보완해 보세요.",
			"캠페인별 역할과 기여도를 구분해 정리해 보세요.",
		}
	case trackDevelopment:
		return []string{
			"사용한 기술 스택과 선택 이유를 추가해 보세요.",
			"성능 개선이나 장애 해결 경험을 수치로 정리해 보세요.",
		}
	default:
		return []string{
			"프로젝트의 목표와 결과를 한 문장으로 정리해 보세요.",
			"담당한 역할을 구체적으로 추가해 보세요.",
		}
	}
}
