package category

// IconInfo names the presentational icon and color gradient the SPA
// renders for a project category. Icon values are lucide identifiers.
type IconInfo struct {
	Icon     string `json:"icon"`
	Gradient string `json:"gradient"`
}

// DefaultKey is the fallback entry for unrecognized categories.
const DefaultKey = "기타"

var iconMap = map[string]IconInfo{
	// 마케팅
	"브랜드 마케팅":   {Icon: "Megaphone", Gradient: "from-blue-500 to-cyan-500"},
	"SNS 마케팅":   {Icon: "MessageSquare", Gradient: "from-purple-500 to-pink-500"},
	"콘텐츠 마케팅":   {Icon: "PenTool", Gradient: "from-orange-500 to-red-500"},
	"퍼포먼스 마케팅":  {Icon: "TrendingUp", Gradient: "from-green-500 to-emerald-500"},
	"UI/UX 디자인": {Icon: "Layout", Gradient: "from-indigo-500 to-purple-500"},
	"그래픽 디자인":   {Icon: "Palette", Gradient: "from-pink-500 to-rose-500"},

	// 개발
	"프론트엔드":  {Icon: "Code", Gradient: "from-blue-500 to-cyan-500"},
	"백엔드":    {Icon: "Code", Gradient: "from-purple-500 to-pink-500"},
	"풀스택":    {Icon: "Code", Gradient: "from-orange-500 to-red-500"},
	"데이터 분석": {Icon: "BarChart3", Gradient: "from-green-500 to-emerald-500"},
	"AI/ML":  {Icon: "Sparkles", Gradient: "from-indigo-500 to-purple-500"},
	"모바일 앱":  {Icon: "Code", Gradient: "from-pink-500 to-rose-500"},

	// 기타 도메인
	"기획":     {Icon: "Calendar", Gradient: "from-sky-500 to-blue-500"},
	"프레젠테이션": {Icon: "MessageSquare", Gradient: "from-purple-500 to-violet-500"},
	"협업":     {Icon: "Briefcase", Gradient: "from-cyan-500 to-blue-500"},
	"디자인":    {Icon: "Palette", Gradient: "from-pink-500 to-rose-500"},

	DefaultKey: {Icon: "FileText", Gradient: "from-gray-500 to-gray-600"},
}

// Resolve maps a free-text category to its icon pair. Unknown keys get
// the default entry, so the function is total.
func Resolve(category string) IconInfo {
	if info, ok := iconMap[category]; ok {
		return info
	}
	return iconMap[DefaultKey]
}

// Keys lists the configured categories, default included.
func Keys() []string {
	keys := make([]string, 0, len(iconMap))
	for k := range iconMap {
		keys = append(keys, k)
	}
	return keys
}
