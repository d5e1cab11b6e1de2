package normalize

import "strings"

// locationAliases maps common short-form region names to standard
// administrative district names. Unmapped input passes through as-is.
var locationAliases = map[string]string{
	"서울 동작구":  "서울특별시 동작구",
	"서울 마포구":  "서울특별시 마포구",
	"서울 송파구":  "서울특별시 송파구",
	"부산 해운대구": "부산광역시 해운대구",
	"대구 수성구":  "대구광역시 수성구",
}

// Location normalizes a free-form region name to its standard
// administrative form when a mapping is known.
func Location(location string) string {
	if std, ok := locationAliases[strings.TrimSpace(location)]; ok {
		return std
	}
	return location
}
