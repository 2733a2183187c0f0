package policy

import "errors"

var (
	// ErrPolicyNotFound возвращается, когда для юриста нет переопределения политики
	ErrPolicyNotFound = errors.New("policy.repository: policy not found")
)
