package paginator

const (
	// DefaultPage is the default page number when invalid page is provided.
	DefaultPage = 1
	// DefaultLimit is the default page size of the company list.
	DefaultLimit = 20
	// MaxLimit is the largest page size the upstream API accepts.
	MaxLimit = 100
)
