package resolvers

import "github.com/valyala/fastjson"

// Lookup проходит по пути keys в нетипизированном JSON дереве.
// Любой отсутствующий сегмент даёт nil, ошибок здесь не бывает.
func Lookup(v *fastjson.Value, keys ...string) *fastjson.Value {
	if v == nil {
		return nil
	}

	return v.Get(keys...)
}

// LookupObject как Lookup, но требует, чтобы по пути лежал объект
func LookupObject(v *fastjson.Value, keys ...string) *fastjson.Value {
	res := Lookup(v, keys...)
	if res == nil || res.Type() != fastjson.TypeObject {
		return nil
	}

	return res
}

// LookupString возвращает строку по пути либо nil.
// Числа отдаются в текстовом виде: TikTok иногда присылает id числом.
func LookupString(v *fastjson.Value, keys ...string) *string {
	res := Lookup(v, keys...)
	if res == nil {
		return nil
	}

	var s string

	switch res.Type() {
	case fastjson.TypeString:
		s = string(res.GetStringBytes())
	case fastjson.TypeNumber:
		s = res.String()
	default:
		return nil
	}

	if s == "" {
		return nil
	}

	return &s
}

// FirstString возвращает первую найденную строку среди нескольких путей
func FirstString(v *fastjson.Value, paths ...[]string) *string {
	for _, p := range paths {
		if s := LookupString(v, p...); s != nil {
			return s
		}
	}

	return nil
}
