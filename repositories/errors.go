package repositories

// RepositoryError depo katmanının sabit hataları.
type RepositoryError string

func (e RepositoryError) Error() string { return string(e) }

const (
	ErrNotFound             RepositoryError = "kayıt bulunamadı"
	ErrStorageQuotaExceeded RepositoryError = "depolama kotası aşıldı"
	ErrStorageCorrupted     RepositoryError = "kayıtlı veri okunamadı"
	ErrInvalidRecord        RepositoryError = "geçersiz kayıt"
)
