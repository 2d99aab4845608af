package tui

import (
	"context"

	"cardapio-cli/internal/api"
	"cardapio-cli/internal/confirm"
	"cardapio-cli/internal/model"
)

type view int

const (
	viewLogin view = iota
	viewRegisterRestaurant
	viewRegisterUser
	viewProducts
	viewProductForm
	viewCategoryForm
)

type modalKind int

const (
	modalNone modalKind = iota
	modalConfirm
	modalRenameCategory
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// menuAPI is the slice of the API client the TUI drives. Kept as an
// interface so update-loop tests can record calls without a server.
type menuAPI interface {
	Login(ctx context.Context, email, password string) (api.LoginResult, error)
	RegisterUser(ctx context.Context, restaurantID, email, password string) error
	RegisterRestaurant(ctx context.Context, name, phone, address string) (api.RegisteredRestaurant, error)

	CategoriesWithProducts(ctx context.Context, restaurantID string) ([]model.Category, error)
	CreateCategory(ctx context.Context, restaurantID, name string) (api.CreatedCategory, error)
	RenameCategory(ctx context.Context, restaurantID, categoryID, name string) error
	DeleteCategory(ctx context.Context, restaurantID, categoryID string) error

	CreateProduct(ctx context.Context, draft api.ProductDraft, imagePath string) (model.Product, error)
	Product(ctx context.Context, id string) (model.Product, error)
	UpdateProduct(ctx context.Context, id string, draft api.ProductDraft) error
	SetProductActive(ctx context.Context, id string, active bool) error
	DeleteProduct(ctx context.Context, id string) error
	SetProductImage(ctx context.Context, id, imagePath string) error

	ResolveImageURL(raw string) string
}

// pendingKind tags the destructive action waiting on the confirm modal.
type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingDeleteProduct
	pendingDeleteCategory
)

type pendingAction struct {
	kind       pendingKind
	productID  string
	categoryID string
	name       string
}

// Messages.

type categoriesMsg struct {
	seq  int
	cats []model.Category
	err  error
}

type toastsMsg struct{ items []model.Notification }

type confirmStateMsg struct{ st confirm.State }

type confirmAnswerMsg struct{ ok bool }

// mutationDoneMsg covers delete/rename/create outcomes that trigger a full
// reload on success.
type mutationDoneMsg struct {
	verb    string // "deleted", "renamed", "created", ...
	subject string // what to mention in the toast
	err     error
}

// activeToggledMsg is the one mutation applied locally instead of via
// reload.
type activeToggledMsg struct {
	productID string
	active    bool
	err       error
}

type loginDoneMsg struct {
	res api.LoginResult
	err error
}

type restaurantRegisteredMsg struct {
	id  string
	err error
}

type userRegisteredMsg struct{ err error }

type productLoadedMsg struct {
	p        model.Product
	notFound bool
	err      error
}

type productSavedMsg struct {
	created bool
	name    string
	err     error
}

type sessionErrMsg struct{ err error }
