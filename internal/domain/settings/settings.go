package settings

type BusinessContact struct {
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	BusinessHours string `json:"businessHours"`
}

type SiteSettings struct {
	WebsiteName string `json:"websiteName"`
	LogoURL     string `json:"logoUrl"`
	BannerURL   string `json:"bannerUrl"`
	Favicon     string `json:"favicon"`
}

// CompanyProfile is the about-the-lab document the profile page renders.
// Stored as one JSON document; the page destructures every key below.
type CompanyProfile struct {
	CompanyName    string           `json:"companyName"`
	Tagline        string           `json:"tagline"`
	Certifications []string         `json:"certifications"`
	About          string           `json:"about"`
	Mission        string           `json:"mission"`
	Vision         string           `json:"vision"`
	Stats          []ProfileStat    `json:"stats"`
	Services       []ProfileService `json:"services"`
	Leadership     []ProfileLeader  `json:"leadership"`
	Contact        ProfileContact   `json:"contact"`
}

type ProfileStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ProfileService struct {
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tests       []string `json:"tests"`
}

type ProfileLeader struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

type ProfileContact struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Hours   string `json:"hours"`
}
