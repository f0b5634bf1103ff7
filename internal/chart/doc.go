// Package chart renders the city premium dumbbell chart.
//
// Each city gets one horizontal segment from the national average to the city
// average, with a marker at both ends and the premium, rounded to the nearest
// thousand, printed next to the city end. The chart is written once as PNG
// and once as SVG.
package chart
