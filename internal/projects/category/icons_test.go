package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_KnownCategories(t *testing.T) {
	assert.Equal(t, IconInfo{Icon: "Megaphone", Gradient: "from-blue-500 to-cyan-500"}, Resolve("브랜드 마케팅"))
	assert.Equal(t, IconInfo{Icon: "Code", Gradient: "from-purple-500 to-pink-500"}, Resolve("백엔드"))
	assert.Equal(t, IconInfo{Icon: "BarChart3", Gradient: "from-green-500 to-emerald-500"}, Resolve("데이터 분석"))
}

func TestResolve_UnknownFallsBack(t *testing.T) {
	fallback := Resolve(DefaultKey)
	assert.Equal(t, "FileText", fallback.Icon)

	assert.Equal(t, fallback, Resolve("없는 카테고리"))
	assert.Equal(t, fallback, Resolve(""))
}

func TestResolve_Total(t *testing.T) {
	for _, key := range Keys() {
		info := Resolve(key)
		assert.NotEmpty(t, info.Icon, "category %q", key)
		assert.NotEmpty(t, info.Gradient, "category %q", key)
	}
}
