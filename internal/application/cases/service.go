package cases

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MightyBhargava/LegalChain-sub001/internal/core"
	"github.com/MightyBhargava/LegalChain-sub001/internal/domain"
	"github.com/MightyBhargava/LegalChain-sub001/internal/pkg/id"
	"github.com/MightyBhargava/LegalChain-sub001/internal/pkg/validate"
)

// objectStore is the slice of the S3 store this package needs.
type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
}

type Service interface {
	List(ctx context.Context, userID string) []domain.Case
	Get(ctx context.Context, userID, caseID string) (*domain.Case, error)
	Add(ctx context.Context, userID string, req domain.CreateCaseRequest, addedByLawyer bool) (*domain.Case, error)
	// Update replaces the whole record. A missing id is silently ignored and
	// the request reported back unchanged.
	Update(ctx context.Context, userID string, c domain.Case) domain.Case
	// Remove deletes by id; removing an absent id is a no-op.
	Remove(ctx context.Context, userID, caseID string)
	// AttachDocument stores a document under the case and bumps its document
	// counter. The returned id retrieves the document via OpenDocument.
	AttachDocument(ctx context.Context, userID, caseID, filename string, body io.Reader, contentType string) (string, error)
	// OpenDocument streams a previously attached document. The caller must
	// close the reader.
	OpenDocument(ctx context.Context, userID, caseID, docID string) (io.ReadCloser, error)
}

type service struct {
	stores  *core.Registry[domain.Case]
	objects objectStore
}

func NewService(stores *core.Registry[domain.Case], objects objectStore) Service {
	return &service{stores: stores, objects: objects}
}

func (s *service) List(_ context.Context, userID string) []domain.Case {
	return s.stores.For(userID).Snapshot()
}

func (s *service) Get(_ context.Context, userID, caseID string) (*domain.Case, error) {
	c, ok := s.stores.For(userID).Get(caseID)
	if !ok {
		return nil, fmt.Errorf("case %s: %w", caseID, domain.ErrNotFound)
	}
	return &c, nil
}

func (s *service) Add(_ context.Context, userID string, req domain.CreateCaseRequest, addedByLawyer bool) (*domain.Case, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	c := domain.Case{
		CaseID:        id.New(),
		Title:         req.Title,
		CaseNumber:    req.CaseNumber,
		CaseType:      req.CaseType,
		Status:        req.Status,
		Court:         req.Court,
		Judge:         req.Judge,
		FilingDate:    req.FilingDate,
		NextHearing:   req.NextHearing,
		CourtRoom:     req.CourtRoom,
		Description:   req.Description,
		Petitioner:    req.Petitioner,
		Respondent:    req.Respondent,
		Advocate:      req.Advocate,
		AddedByLawyer: addedByLawyer,
	}
	s.stores.For(userID).Apply(func(items []domain.Case) []domain.Case {
		return core.UpsertCase(items, c)
	})
	return &c, nil
}

func (s *service) Update(_ context.Context, userID string, c domain.Case) domain.Case {
	s.stores.For(userID).Apply(func(items []domain.Case) []domain.Case {
		return core.UpdateCase(items, c)
	})
	return c
}

func (s *service) Remove(_ context.Context, userID, caseID string) {
	s.stores.For(userID).Apply(func(items []domain.Case) []domain.Case {
		return core.RemoveCase(items, caseID)
	})
}

func (s *service) AttachDocument(ctx context.Context, userID, caseID, filename string, body io.Reader, contentType string) (string, error) {
	if _, ok := s.stores.For(userID).Get(caseID); !ok {
		return "", fmt.Errorf("case %s: %w", caseID, domain.ErrNotFound)
	}
	docID := id.New()
	if name := sanitizeFilename(filename); name != "" {
		docID += "-" + name
	}
	if _, err := s.objects.Upload(ctx, documentKey(userID, caseID, docID), body, contentType); err != nil {
		return "", fmt.Errorf("uploading document: %w", err)
	}
	s.stores.For(userID).Apply(func(items []domain.Case) []domain.Case {
		c, ok := findCase(items, caseID)
		if !ok {
			return items
		}
		c.DocumentCount++
		return core.UpdateCase(items, c)
	})
	return docID, nil
}

func (s *service) OpenDocument(ctx context.Context, userID, caseID, docID string) (io.ReadCloser, error) {
	if sanitizeFilename(docID) != docID || docID == "" {
		return nil, fmt.Errorf("document id %q: %w", docID, domain.ErrBadRequest)
	}
	if _, ok := s.stores.For(userID).Get(caseID); !ok {
		return nil, fmt.Errorf("case %s: %w", caseID, domain.ErrNotFound)
	}
	rc, err := s.objects.Download(ctx, documentKey(userID, caseID, docID))
	if err != nil {
		return nil, fmt.Errorf("downloading document: %w", err)
	}
	return rc, nil
}

// documentKey scopes object keys to the owning user so one user's document
// ids can never resolve another user's objects.
func documentKey(userID, caseID, docID string) string {
	return "cases/" + userID + "/" + caseID + "/" + docID
}

// sanitizeFilename strips path separators and dot segments from an uploaded
// filename before it becomes part of an object key.
func sanitizeFilename(name string) string {
	if i := strings.LastIndexAny(name, "/\\"); i >= 0 {
		name = name[i+1:]
	}
	return strings.ReplaceAll(name, "..", "")
}

func findCase(items []domain.Case, caseID string) (domain.Case, bool) {
	for _, c := range items {
		if c.CaseID == caseID {
			return c, true
		}
	}
	return domain.Case{}, false
}
