package util

import (
	"strconv"
	"strings"
	"unicode"
)

// StrSliceToUInt64Slice 字符串切片批量转 uint64
func StrSliceToUInt64Slice(strs []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(strs))
	for _, s := range strs {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Uint64SetEqual 判断两个 id 集合是否一致（忽略顺序与重复）
func Uint64SetEqual(a, b []uint64) bool {
	setA := make(map[uint64]struct{}, len(a))
	for _, v := range a {
		setA[v] = struct{}{}
	}
	setB := make(map[uint64]struct{}, len(b))
	for _, v := range b {
		setB[v] = struct{}{}
	}
	if len(setA) != len(setB) {
		return false
	}
	for v := range setA {
		if _, ok := setB[v]; !ok {
			return false
		}
	}
	return true
}

// PtrStr 用于将 string 转换为 *string
func PtrStr(s string) *string {
	return &s
}

// PtrFloat64 用于将 float64 转换为 *float64
func PtrFloat64(f float64) *float64 {
	return &f
}

// PtrFloat32 用于将 float32 转换为 *float32
func PtrFloat32(f float32) *float32 {
	return &f
}

// Slugify 将标题转换为 URL 友好的 slug：小写、字母数字保留、其余折叠为连字符
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
