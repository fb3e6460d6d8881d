package defaults

func StringOrDefault(s string, defaultValue string) string {
	if s == "" {
		return defaultValue
	}
	return s
}

func StringPtrOrDefault(s *string, defaultValue string) string {
	if s == nil {
		return defaultValue
	}
	return *s
}

func IntOrDefault(i int, defaultValue int) int {
	if i == 0 {
		return defaultValue
	}
	return i
}
