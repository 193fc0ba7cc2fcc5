package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/backlinehq/backline/internal/domain"
	"github.com/backlinehq/backline/internal/dto"
	"github.com/backlinehq/backline/internal/repository"
)

// AttachmentService manages the child entities hanging off events,
// opportunities, and contacts: notes, comments, documents, labels, tags.
// Tenant checks always go through the parent: the child is fetched, its
// parent's venue resolved, and a mismatch is indistinguishable from the
// child not existing. Deletion additionally verifies the child actually
// belongs to the parent named in the request.
type AttachmentService interface {
	AddNote(ctx context.Context, userID, parentType, parentID string, req *dto.CreateNoteRequest) (*domain.Note, error)
	ListNotes(ctx context.Context, userID, parentType, parentID string) ([]*domain.Note, error)
	DeleteNote(ctx context.Context, userID, parentType, parentID, noteID string) error

	AddComment(ctx context.Context, userID, parentType, parentID string, req *dto.CreateCommentRequest) (*domain.Comment, error)
	ListComments(ctx context.Context, userID, parentType, parentID string) ([]*domain.Comment, error)
	DeleteComment(ctx context.Context, userID, parentType, parentID, commentID string) error

	AddDocument(ctx context.Context, userID, parentType, parentID string, req *dto.CreateDocumentRequest) (*domain.Document, error)
	ListDocuments(ctx context.Context, userID, parentType, parentID string) ([]*domain.Document, error)
	DeleteDocument(ctx context.Context, userID, parentType, parentID, docID string) error

	AddLabel(ctx context.Context, userID, opportunityID string, req *dto.CreateLabelRequest) (*domain.Label, error)
	ListLabels(ctx context.Context, userID, opportunityID string) ([]*domain.Label, error)
	DeleteLabel(ctx context.Context, userID, opportunityID, labelID string) error

	AddTag(ctx context.Context, userID, parentType, parentID string, req *dto.CreateTagRequest) (*domain.Tag, error)
	ListTags(ctx context.Context, userID, parentType, parentID string) ([]*domain.Tag, error)
	DeleteTag(ctx context.Context, userID, parentType, parentID, tagID string) error
}

type attachmentService struct {
	noteRepo    repository.NoteRepository
	commentRepo repository.CommentRepository
	docRepo     repository.DocumentRepository
	labelRepo   repository.LabelRepository
	tagRepo     repository.TagRepository
	eventRepo   repository.EventRepository
	oppRepo     repository.OpportunityRepository
	contactRepo repository.ContactRepository
	guard       *Guard
}

// NewAttachmentService creates a new AttachmentService.
func NewAttachmentService(
	noteRepo repository.NoteRepository,
	commentRepo repository.CommentRepository,
	docRepo repository.DocumentRepository,
	labelRepo repository.LabelRepository,
	tagRepo repository.TagRepository,
	eventRepo repository.EventRepository,
	oppRepo repository.OpportunityRepository,
	contactRepo repository.ContactRepository,
	guard *Guard,
) AttachmentService {
	return &attachmentService{
		noteRepo:    noteRepo,
		commentRepo: commentRepo,
		docRepo:     docRepo,
		labelRepo:   labelRepo,
		tagRepo:     tagRepo,
		eventRepo:   eventRepo,
		oppRepo:     oppRepo,
		contactRepo: contactRepo,
		guard:       guard,
	}
}

// requireParent resolves the parent entity's owning venue and applies the
// tenant guard. An unknown parent kind, a missing parent, or a foreign
// parent all come back as ErrNotFound-class failures.
func (s *attachmentService) requireParent(ctx context.Context, member *domain.VenueMember, parentType, parentID string) error {
	var venueID string
	switch parentType {
	case domain.ParentEvent:
		event, err := s.eventRepo.GetByID(ctx, parentID)
		if err != nil {
			return err
		}
		if event == nil {
			return ErrNotFound
		}
		venueID = event.VenueID
	case domain.ParentOpportunity:
		opp, err := s.oppRepo.GetByID(ctx, parentID)
		if err != nil {
			return err
		}
		if opp == nil {
			return ErrNotFound
		}
		venueID = opp.VenueID
	case domain.ParentContact:
		contact, err := s.contactRepo.GetByID(ctx, parentID)
		if err != nil {
			return err
		}
		if contact == nil {
			return ErrNotFound
		}
		venueID = contact.VenueID
	default:
		return ErrNotFound
	}
	return s.guard.RequireVenue(member, venueID)
}

func (s *attachmentService) authorizeParent(ctx context.Context, userID, parentType, parentID string) (*domain.VenueMember, error) {
	member, err := s.guard.Membership(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.requireParent(ctx, member, parentType, parentID); err != nil {
		return nil, err
	}
	return member, nil
}

// --- Notes ---

func (s *attachmentService) AddNote(ctx context.Context, userID, parentType, parentID string, req *dto.CreateNoteRequest) (*domain.Note, error) {
	if ok, msg := req.Validate(); !ok {
		return nil, invalidInput(msg)
	}
	if _, err := s.authorizeParent(ctx, userID, parentType, parentID); err != nil {
		return nil, err
	}
	note := &domain.Note{
		ID:         uuid.New().String(),
		ParentType: parentType,
		ParentID:   parentID,
		Content:    req.Content,
		AuthorID:   userID,
		CreatedAt:  time.Now(),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *attachmentService) ListNotes(ctx context.Context, userID, parentType, parentID string) ([]*domain.Note, error) {
	if _, err := s.authorizeParent(ctx, userID, parentType, parentID); err != nil {
		return nil, err
	}
	return s.noteRepo.ListByParent(ctx, parentType, parentID)
}

func (s *attachmentService) DeleteNote(ctx context.Context, userID, parentType, parentID, noteID string) error {
	if _, err := s.authorizeParent(ctx, userID, parentType, parentID); err != nil {
		return err
	}
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return err
	}
	if note == nil || note.ParentType != parentType || note.ParentID != parentID {
		return ErrNotFound
	}
	return s.noteRepo.Delete(ctx, note.ID)
}

// --- Comments ---

func (s *attachmentService) AddComment(ctx context.Context, userID, parentType, parentID string, req *dto.CreateCommentRequest) (*domain.Comment, error) {
	if ok, msg := req.Validate(); !ok {
		return nil, invalidInput(msg)
	}
	if _, err := s.authorizeParent(ctx, userID, parentType, parentID); err != nil {
		return nil, err
	}
	comment := &domain.Comment{
		ID:         uuid.New().String(),
		ParentType: parentType,
		ParentID:   parentID,
		Content:    req.Content,
		AuthorID:   userID,
		CreatedAt:  time.Now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *attachmentService) ListComments(ctx context.Context, userID, parentType, parentID string) ([]*domain.Comment, error) {
	if _, err := s.authorizeParent(ctx, userID, parentType, parentID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByParent(ctx, parentType, parentID)
}

func (s *attachmentService) DeleteComment(ctx context.Context, userID, parentType, parentID, commentID string) error {
	if _, err := s.authorizeParent(ctx, userID, parentType, parentID); err != nil {
		return err
	}
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil || comment.ParentType != parentType || comment.ParentID != parentID {
		return ErrNotFound
	}
	return s.commentRepo.Delete(ctx, comment.ID)
}

// --- Documents ---

func (s *attachmentService) AddDocument(ctx context.Context, userID, parentType, parentID string, req *dto.CreateDocumentRequest) (*domain.Document, error) {
	if ok, msg := req.Validate(); !ok {
		return nil, invalidInput(msg)
	}
	if _, err := s.authorizeParent(ctx, userID, parentType, parentID); err != nil {
		return nil, err
	}
	doc := &domain.Document{
		ID:         uuid.New().String(),
		ParentType: parentType,
		ParentID:   parentID,
		Name:       req.Name,
		URL:        req.URL,
		Type:       req.DocType(),
		CreatedAt:  time.Now(),
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *attachmentService) ListDocuments(ctx context.Context, userID, parentType, parentID string) ([]*domain.Document, error) {
	if _, err := s.authorizeParent(ctx, userID, parentType, parentID); err != nil {
		return nil, err
	}
	return s.docRepo.ListByParent(ctx, parentType, parentID)
}

func (s *attachmentService) DeleteDocument(ctx context.Context, userID, parentType, parentID, docID string) error {
	if _, err := s.authorizeParent(ctx, userID, parentType, parentID); err != nil {
		return err
	}
	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	if doc == nil || doc.ParentType != parentType || doc.ParentID != parentID {
		return ErrNotFound
	}
	return s.docRepo.Delete(ctx, doc.ID)
}

// --- Labels (opportunities only) ---

func (s *attachmentService) AddLabel(ctx context.Context, userID, opportunityID string, req *dto.CreateLabelRequest) (*domain.Label, error) {
	if ok, msg := req.Validate(); !ok {
		return nil, invalidInput(msg)
	}
	if _, err := s.authorizeParent(ctx, userID, domain.ParentOpportunity, opportunityID); err != nil {
		return nil, err
	}
	label := &domain.Label{
		ID:            uuid.New().String(),
		OpportunityID: opportunityID,
		Name:          req.Name,
		CreatedAt:     time.Now(),
	}
	if err := s.labelRepo.Create(ctx, label); err != nil {
		return nil, err
	}
	return label, nil
}

func (s *attachmentService) ListLabels(ctx context.Context, userID, opportunityID string) ([]*domain.Label, error) {
	if _, err := s.authorizeParent(ctx, userID, domain.ParentOpportunity, opportunityID); err != nil {
		return nil, err
	}
	return s.labelRepo.ListByOpportunity(ctx, opportunityID)
}

func (s *attachmentService) DeleteLabel(ctx context.Context, userID, opportunityID, labelID string) error {
	if _, err := s.authorizeParent(ctx, userID, domain.ParentOpportunity, opportunityID); err != nil {
		return err
	}
	label, err := s.labelRepo.GetByID(ctx, labelID)
	if err != nil {
		return err
	}
	if label == nil || label.OpportunityID != opportunityID {
		return ErrNotFound
	}
	return s.labelRepo.Delete(ctx, label.ID)
}

// --- Tags (events and contacts) ---

func (s *attachmentService) AddTag(ctx context.Context, userID, parentType, parentID string, req *dto.CreateTagRequest) (*domain.Tag, error) {
	if ok, msg := req.Validate(); !ok {
		return nil, invalidInput(msg)
	}
	if _, err := s.authorizeParent(ctx, userID, parentType, parentID); err != nil {
		return nil, err
	}
	tag := &domain.Tag{
		ID:         uuid.New().String(),
		ParentType: parentType,
		ParentID:   parentID,
		Name:       req.Name,
		CreatedAt:  time.Now(),
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *attachmentService) ListTags(ctx context.Context, userID, parentType, parentID string) ([]*domain.Tag, error) {
	if _, err := s.authorizeParent(ctx, userID, parentType, parentID); err != nil {
		return nil, err
	}
	return s.tagRepo.ListByParent(ctx, parentType, parentID)
}

func (s *attachmentService) DeleteTag(ctx context.Context, userID, parentType, parentID, tagID string) error {
	if _, err := s.authorizeParent(ctx, userID, parentType, parentID); err != nil {
		return err
	}
	tag, err := s.tagRepo.GetByID(ctx, tagID)
	if err != nil {
		return err
	}
	if tag == nil || tag.ParentType != parentType || tag.ParentID != parentID {
		return ErrNotFound
	}
	return s.tagRepo.Delete(ctx, tag.ID)
}
