package cmd

import "strings"

const bannerWidth = 60

func banner() string {
	return strings.Repeat("=", bannerWidth)
}
