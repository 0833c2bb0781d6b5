package domain

// ============================================================================
// Business Type (single select, sent as its short code)
// ============================================================================

type BusinessType string

const (
	BusinessRetail     BusinessType = "retail"
	BusinessRestaurant BusinessType = "restaurant"
	BusinessFitness    BusinessType = "fitness"
	BusinessSalon      BusinessType = "salon"
	BusinessRealEstate BusinessType = "real_estate"
	BusinessOther      BusinessType = "other"
)

// DefaultBusinessType is preselected when the signup form mounts.
const DefaultBusinessType = BusinessRetail

var businessTypeLabels = map[BusinessType]string{
	BusinessRetail:     "Retail Store",
	BusinessRestaurant: "Restaurant/Café",
	BusinessFitness:    "Fitness/Gym",
	BusinessSalon:      "Beauty Salon/Spa",
	BusinessRealEstate: "Real Estate",
	BusinessOther:      "Other",
}

// ValidBusinessTypes returns all business types in display order
func ValidBusinessTypes() []BusinessType {
	return []BusinessType{BusinessRetail, BusinessRestaurant, BusinessFitness, BusinessSalon, BusinessRealEstate, BusinessOther}
}

func (t BusinessType) IsValid() bool {
	_, ok := businessTypeLabels[t]
	return ok
}

func (t BusinessType) Label() string {
	return businessTypeLabels[t]
}

// ============================================================================
// Goals and Platforms (multi select, sent as their literal labels)
// ============================================================================

type Goal string

const (
	GoalBrandAwareness     Goal = "Increase brand awareness"
	GoalDriveSales         Goal = "Drive more sales"
	GoalCustomerEngagement Goal = "Improve customer engagement"
	GoalGenerateLeads      Goal = "Generate leads"
	GoalBuildCommunity     Goal = "Build community"
	GoalShowcase           Goal = "Showcase products/services"
)

func ValidGoals() []Goal {
	return []Goal{GoalBrandAwareness, GoalDriveSales, GoalCustomerEngagement, GoalGenerateLeads, GoalBuildCommunity, GoalShowcase}
}

func (g Goal) IsValid() bool {
	for _, valid := range ValidGoals() {
		if g == valid {
			return true
		}
	}
	return false
}

type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
	PlatformTwitter   Platform = "Twitter"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformTikTok    Platform = "TikTok"
	PlatformYouTube   Platform = "YouTube"
)

func ValidPlatforms() []Platform {
	return []Platform{PlatformInstagram, PlatformFacebook, PlatformTwitter, PlatformLinkedIn, PlatformTikTok, PlatformYouTube}
}

func (p Platform) IsValid() bool {
	for _, valid := range ValidPlatforms() {
		if p == valid {
			return true
		}
	}
	return false
}

// ============================================================================
// Post Creator, Content Studio and Navigation
// ============================================================================

type PostType string

const (
	PostProduct PostType = "product"
	PostService PostType = "service"
	PostUpdate  PostType = "update"
	PostTips    PostType = "tips"
)

var postTypeLabels = map[PostType]string{
	PostProduct: "Product",
	PostService: "Service",
	PostUpdate:  "Company Update",
	PostTips:    "Tips & Advice",
}

func ValidPostTypes() []PostType {
	return []PostType{PostProduct, PostService, PostUpdate, PostTips}
}

func (t PostType) IsValid() bool {
	_, ok := postTypeLabels[t]
	return ok
}

func (t PostType) Label() string {
	return postTypeLabels[t]
}

// PostTiming is the step 3 display choice. None of them schedules anything.
type PostTiming string

const (
	TimingNow      PostTiming = "now"
	TimingBestTime PostTiming = "best_time"
	TimingPickTime PostTiming = "pick_time"
)

var postTimingLabels = map[PostTiming]string{
	TimingNow:      "Post Now",
	TimingBestTime: "Best Time (AI Recommended)",
	TimingPickTime: "Pick a Time",
}

func ValidPostTimings() []PostTiming {
	return []PostTiming{TimingNow, TimingBestTime, TimingPickTime}
}

func (t PostTiming) IsValid() bool {
	_, ok := postTimingLabels[t]
	return ok
}

func (t PostTiming) Label() string {
	return postTimingLabels[t]
}

type StudioPlatform string

const (
	StudioFacebook  StudioPlatform = "facebook"
	StudioInstagram StudioPlatform = "instagram"
	StudioLinkedIn  StudioPlatform = "linkedin"
)

var studioPlatformLabels = map[StudioPlatform]string{
	StudioFacebook:  "Facebook",
	StudioInstagram: "Instagram",
	StudioLinkedIn:  "LinkedIn",
}

func ValidStudioPlatforms() []StudioPlatform {
	return []StudioPlatform{StudioFacebook, StudioInstagram, StudioLinkedIn}
}

func (p StudioPlatform) IsValid() bool {
	_, ok := studioPlatformLabels[p]
	return ok
}

func (p StudioPlatform) Label() string {
	return studioPlatformLabels[p]
}

type StudioContentType string

const (
	StudioProduct StudioContentType = "product"
	StudioUpdate  StudioContentType = "update"
	StudioEvent   StudioContentType = "event"
)

var studioContentTypeLabels = map[StudioContentType]string{
	StudioProduct: "Product",
	StudioUpdate:  "Company Update",
	StudioEvent:   "Event",
}

func ValidStudioContentTypes() []StudioContentType {
	return []StudioContentType{StudioProduct, StudioUpdate, StudioEvent}
}

func (t StudioContentType) IsValid() bool {
	_, ok := studioContentTypeLabels[t]
	return ok
}

func (t StudioContentType) Label() string {
	return studioContentTypeLabels[t]
}

// NavItem is an entry of the dashboard side navigation.
type NavItem string

const (
	NavDashboard NavItem = "dashboard"
	NavCreate    NavItem = "create"
	NavCalendar  NavItem = "calendar"
	NavAnalytics NavItem = "analytics"
	NavAssistant NavItem = "assistant"
)

var navItemLabels = map[NavItem]string{
	NavDashboard: "Dashboard",
	NavCreate:    "Create Content",
	NavCalendar:  "Content Calendar",
	NavAnalytics: "Analytics",
	NavAssistant: "AI Assistant",
}

func ValidNavItems() []NavItem {
	return []NavItem{NavDashboard, NavCreate, NavCalendar, NavAnalytics, NavAssistant}
}

func (n NavItem) IsValid() bool {
	_, ok := navItemLabels[n]
	return ok
}

func (n NavItem) Label() string {
	return navItemLabels[n]
}

// NavbarItem is an entry of the simplified bottom navbar.
type NavbarItem string

const (
	NavbarHome     NavbarItem = "home"
	NavbarCreate   NavbarItem = "create"
	NavbarSchedule NavbarItem = "schedule"
	NavbarResults  NavbarItem = "results"
	NavbarHelp     NavbarItem = "help"
)

var navbarItemLabels = map[NavbarItem]string{
	NavbarHome:     "Home",
	NavbarCreate:   "Create Post",
	NavbarSchedule: "Schedule",
	NavbarResults:  "Results",
	NavbarHelp:     "Help",
}

func ValidNavbarItems() []NavbarItem {
	return []NavbarItem{NavbarHome, NavbarCreate, NavbarSchedule, NavbarResults, NavbarHelp}
}

func (n NavbarItem) IsValid() bool {
	_, ok := navbarItemLabels[n]
	return ok
}

func (n NavbarItem) Label() string {
	return navbarItemLabels[n]
}

// ============================================================================
// Vocabulary table (served to renderers)
// ============================================================================

// Option is one selectable entry as a renderer sees it.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Vocabulary is the single table shared by validation and rendering.
type Vocabulary struct {
	BusinessTypes      []Option `json:"business_types"`
	Goals              []Option `json:"goals"`
	Platforms          []Option `json:"platforms"`
	PostTypes          []Option `json:"post_types"`
	PostTimings        []Option `json:"post_timings"`
	StudioPlatforms    []Option `json:"studio_platforms"`
	StudioContentTypes []Option `json:"studio_content_types"`
	NavItems           []Option `json:"nav_items"`
	NavbarItems        []Option `json:"navbar_items"`
}

// BuildVocabulary assembles the table from the typed vocabularies above.
func BuildVocabulary() Vocabulary {
	v := Vocabulary{}
	for _, t := range ValidBusinessTypes() {
		v.BusinessTypes = append(v.BusinessTypes, Option{Value: string(t), Label: t.Label()})
	}
	for _, g := range ValidGoals() {
		v.Goals = append(v.Goals, Option{Value: string(g), Label: string(g)})
	}
	for _, p := range ValidPlatforms() {
		v.Platforms = append(v.Platforms, Option{Value: string(p), Label: string(p)})
	}
	for _, t := range ValidPostTypes() {
		v.PostTypes = append(v.PostTypes, Option{Value: string(t), Label: t.Label()})
	}
	for _, t := range ValidPostTimings() {
		v.PostTimings = append(v.PostTimings, Option{Value: string(t), Label: t.Label()})
	}
	for _, p := range ValidStudioPlatforms() {
		v.StudioPlatforms = append(v.StudioPlatforms, Option{Value: string(p), Label: p.Label()})
	}
	for _, t := range ValidStudioContentTypes() {
		v.StudioContentTypes = append(v.StudioContentTypes, Option{Value: string(t), Label: t.Label()})
	}
	for _, n := range ValidNavItems() {
		v.NavItems = append(v.NavItems, Option{Value: string(n), Label: n.Label()})
	}
	for _, n := range ValidNavbarItems() {
		v.NavbarItems = append(v.NavbarItems, Option{Value: string(n), Label: n.Label()})
	}
	return v
}
