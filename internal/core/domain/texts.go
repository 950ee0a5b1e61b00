package domain

// User-facing texts. The storefront is Russian-language; the strings match
// the site copy exactly and are the single source of truth for it.
const (
	TextNetworkError         = "Ошибка сети"
	TextConnectionError      = "Произошла ошибка. Проверьте соединение с сервером."
	TextLoginFailed          = "Ошибка при входе"
	TextRegisterFailed       = "Ошибка при регистрации"
	TextCredentialsNeeded    = "Введите имя пользователя и пароль."
	TextPasswordTooShort     = "Пароль должен быть не менее 6 символов."
	TextNameTooShort         = "Имя должно содержать минимум 2 символа."
	TextFieldsMissing        = "Пожалуйста, заполните все обязательные поля: имя, телефон и количество."
	TextLoginRequired        = "Пожалуйста, войдите в систему, чтобы сделать заказ."
	TextOrderSubmitFailed    = "Ошибка при отправке заказа. Попробуйте позже."
	TextOrdersLoadFailed     = "Ошибка загрузки заказов"
	TextNoDetailsPlaceholder = "-"
)
