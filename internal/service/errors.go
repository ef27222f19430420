package service

import "errors"

// Ошибки доменного уровня. Хэндлеры различают по ним классы ответов:
// отсутствие записи, нарушение предусловия и конфликт назначения - это
// не то же самое, что недоступность хранилища.
var (
	// ErrIncidentNotFound - инцидент с таким идентификатором не существует
	ErrIncidentNotFound = errors.New("incident not found")

	// ErrAlreadyAssigned - инцидент уже принят другой больницей (first-accept-wins)
	ErrAlreadyAssigned = errors.New("incident already assigned to another hospital")

	// ErrNotAssignee - операция доступна только назначенной больнице
	ErrNotAssignee = errors.New("hospital is not the assignee of this incident")

	// ErrNotReporter - операция доступна только автору инцидента
	ErrNotReporter = errors.New("user is not the reporter of this incident")

	// ErrInvalidTransition - переход отсутствует в графе статусов
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrIncidentClosed - инцидент в терминальном статусе, правки запрещены
	ErrIncidentClosed = errors.New("incident is already closed")

	// ErrOpenIncidentExists - у заявителя уже есть открытый инцидент
	ErrOpenIncidentExists = errors.New("reporter already has an open incident")

	// ErrUserNotFound - пользователь не зарегистрирован
	ErrUserNotFound = errors.New("user not found")

	// ErrHospitalNotFound - больница не зарегистрирована
	ErrHospitalNotFound = errors.New("hospital not found")

	// ErrInvalidCredentials - неверный пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrHospitalPending - заявка больницы еще на рассмотрении
	ErrHospitalPending = errors.New("hospital application is pending review")

	// ErrHospitalRejected - заявка больницы отклонена администратором
	ErrHospitalRejected = errors.New("hospital application was rejected")

	// ErrDuplicateAccount - телефон или email уже заняты
	ErrDuplicateAccount = errors.New("account with this identifier already exists")
)
