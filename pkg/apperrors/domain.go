package apperrors

/*
Этот файл содержит предопределенные ошибки домена рейтингов и подбора.
Сравнивать через Is: сервисы возвращают эти значения без изменений.
*/

// --- Not found ---

var ErrPostNotFound = New(CodeNotFound, "post", "Post not found")

var ErrJobNotFound = New(CodeNotFound, "job", "Job not found")

var ErrFreelancerNotFound = New(CodeNotFound, "freelancer", "Freelancer not found")

var ErrProjectNotFound = New(CodeNotFound, "project", "Project not found")

var ErrRatingNotFound = New(CodeNotFound, "rating", "Rating not found")

// --- Ratings ---

// ErrRatingAlreadyExists - проект уже оценен клиентом.
var ErrRatingAlreadyExists = New(CodeAlreadyExists, "rating", "This project has already been rated")

// ErrProjectNotRateable - проект отменен, оценка невозможна.
var ErrProjectNotRateable = New(CodeInvalidStatus, "rating", "Cancelled projects cannot be rated")

// ErrNotProjectClient - оценку ставит только клиент проекта.
var ErrNotProjectClient = New(CodeForbidden, "rating", "Only the project's client can rate it")

// --- Jobs ---

// ErrNotJobOwner - подбор доступен только автору вакансии.
var ErrNotJobOwner = New(CodeForbidden, "job", "You are not authorized to view matches for this job")

// ErrJobNotOpen - подбор доступен только для открытых вакансий.
var ErrJobNotOpen = New(CodeInvalidStatus, "job", "This job is no longer open for applications")
