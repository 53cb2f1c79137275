package services

import "math/rand"

// FortuneService hands out the fortune cookie shown on the about page
type FortuneService struct {
	cookies []string
}

// NewFortuneService creates the fortune provider with the stock cookie list
func NewFortuneService() *FortuneService {
	return &FortuneService{
		cookies: []string{
			"Conquer your fears or they will conquer you.",
			"Rivers need springs.",
			"Do not fear what you don't know.",
			"You will have a pleasant surprise.",
			"Whenever possible, keep it simple.",
		},
	}
}

// GetFortune returns a randomly chosen fortune
func (s *FortuneService) GetFortune() string {
	return s.cookies[rand.Intn(len(s.cookies))]
}
