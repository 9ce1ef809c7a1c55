package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vkuzn/isect/internal/geom"
)

// parseFloats splits a comma-separated argument into exactly n floats.
func parseFloats(arg string, n int) ([]float64, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated values, got %q", n, arg)
	}

	vals := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q in %q", part, arg)
		}
		vals[i] = v
	}
	return vals, nil
}

// parsePoint parses "x,y".
func parsePoint(arg string) (geom.Point, error) {
	vals, err := parseFloats(arg, 2)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(vals[0], vals[1]), nil
}

// parseRect parses "x,y,w,h".
func parseRect(arg string) (geom.Rect, error) {
	vals, err := parseFloats(arg, 4)
	if err != nil {
		return geom.Rect{}, err
	}
	return geom.NewRect(vals[0], vals[1], vals[2], vals[3]), nil
}
