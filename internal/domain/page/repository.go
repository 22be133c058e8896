package page

import "context"

// Repository exposes data access for Page entities.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Page, error)
	Get(ctx context.Context, id string) (*Page, error)
	GetByFacebookID(ctx context.Context, facebookPageID string) (*Page, error)
	Create(ctx context.Context, p *Page) (*Page, error)
	Update(ctx context.Context, p *Page) (*Page, error)
	Delete(ctx context.Context, id string) error
}

// GraphAPI is the subset of the Facebook Graph client the page service uses.
type GraphAPI interface {
	PageDetails(ctx context.Context, pageID, accessToken string) (*Details, error)
}
