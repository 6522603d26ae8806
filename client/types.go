package client

// Wire types for the catalog collections. Only the fields pages bind to.

type Service struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	DisplayPrice string   `json:"displayPrice"`
	Duration     string   `json:"duration"`
	Rating       float32  `json:"rating"`
	Patients     int      `json:"patients"`
	IsPopular    bool     `json:"isPopular"`
	Category     string   `json:"category"`
	ImageAlt     string   `json:"imageAlt"`
	Features     []string `json:"features"`
	Requirements []string `json:"requirements"`
}

type BloodTest struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl"`
}

type OrderedImage struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"imageUrl"`
	AltText  string `json:"altText"`
	Order    int    `json:"order"`
}

type ThyroidPackage struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	OriginalPrice   float64 `json:"originalPrice"`
	TestsIncluded   string  `json:"tests_included"`
	Description     string  `json:"description"`
	ReportTime      string  `json:"report_time"`
	SampleType      string  `json:"sample_type"`
	FastingRequired string  `json:"fasting_required"`
	Popular         bool    `json:"popular"`
}

type MenuItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Path  string `json:"path"`
	Order int    `json:"order"`
}

// Services mirrors the health-package catalog.
func (c *Client) Services() *Mirror[Service] {
	return NewMirror(c, "/service", func(s Service) int64 { return s.ID })
}

// BloodTests mirrors the blood-test catalog.
func (c *Client) BloodTests() *Mirror[BloodTest] {
	return NewMirror(c, "/blood-tests", func(t BloodTest) int64 { return t.ID })
}

// ThyroidPackages mirrors the thyroid bundle catalog.
func (c *Client) ThyroidPackages() *Mirror[ThyroidPackage] {
	return NewMirror(c, "/thyroid-packages", func(p ThyroidPackage) int64 { return p.ID })
}

// Sliders, Backgrounds and Menu mirror the ordered layout lists.
func (c *Client) Sliders() *Mirror[OrderedImage] {
	return NewMirror(c, "/sliders", func(s OrderedImage) int64 { return s.ID })
}

func (c *Client) Backgrounds() *Mirror[OrderedImage] {
	return NewMirror(c, "/background-images", func(s OrderedImage) int64 { return s.ID })
}

func (c *Client) Menu() *Mirror[MenuItem] {
	return NewMirror(c, "/menu", func(m MenuItem) int64 { return m.ID })
}
