package constvars

const (
	RegexEgyptianMobilePhone = `^(\+20|0)1[0125][0-9]{8}$`
	RegexContactEmail        = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
)
