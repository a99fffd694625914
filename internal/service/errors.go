package service

import "errors"

// Таксономия ошибок сервисного слоя. Хендлеры маппят их в HTTP-статусы,
// ничего другого наружу не утекает.
var (
	// ErrNotFound — запись, на которую ссылается запрос, отсутствует.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden — вызывающий не владеет записью, ограниченной владельцем.
	ErrForbidden = errors.New("not authorized")

	// ErrValidation — не заполнено обязательное поле или значение вне перечисления.
	ErrValidation = errors.New("validation failed")

	// ErrLoginTaken — логин уже занят при регистрации.
	ErrLoginTaken = errors.New("login already taken")
)
