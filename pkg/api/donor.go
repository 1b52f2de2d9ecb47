package api

import (
	"fmt"
	"strings"
)

// Статусы экстренного запроса на стороне сервера
const (
	StatusAwaiting   = "AWAITING"    // ожидает доноров
	StatusResponded  = "RESPONDED"   // донор откликнулся
	StatusDonorFound = "DONOR_FOUND" // донор найден
	StatusCompleted  = "COMPLETED"   // донация завершена, запрос закрыт
)

// UnknownHospital - плейсхолдер, когда ни одно из альтернативных полей
// с названием госпиталя не заполнено
const UnknownHospital = "Unknown Hospital"

// DonorProfile представляет профиль донора
// Сервер - источник истины; клиент держит копию только в памяти запроса
type DonorProfile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	City       string `json:"city,omitempty"`
	BloodGroup string `json:"blood_group"`
}

// UpdateProfileRequest представляет запрос на обновление изменяемых полей профиля
// Группа крови неизменяема после регистрации и не отправляется
type UpdateProfileRequest struct {
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// HospitalRef представляет вложенный объект госпиталя внутри запроса
// Разные эндпоинты заполняют разные поля, поэтому держим оба варианта имени
type HospitalRef struct {
	HospitalName string `json:"hospital_name,omitempty"`
	Name         string `json:"name,omitempty"`
	City         string `json:"city,omitempty"`
	Address      string `json:"address,omitempty"`
}

// EmergencyRequest представляет экстренный запрос крови
// Название госпиталя денормализовано и может прийти под несколькими
// альтернативными ключами в зависимости от эндпоинта
type EmergencyRequest struct {
	Hospital        *HospitalRef `json:"hospital,omitempty"`
	ID              string       `json:"id"`
	BloodGroup      string       `json:"blood_group"`
	City            string       `json:"city,omitempty"`
	Reason          string       `json:"reason,omitempty"`
	Status          string       `json:"status,omitempty"`
	CreatedAt       string       `json:"created_at,omitempty"`
	RequesterName   string       `json:"requester_name,omitempty"`
	HospitalName    string       `json:"hospital_name,omitempty"`
	HospitalNameAlt string       `json:"hospitalName,omitempty"`
	UnitsRequired   int          `json:"units_required"`
}

// DisplayHospitalName возвращает отображаемое имя госпиталя.
// Порядок фолбэков фиксирован и должен сохраняться:
//  1. requester_name
//  2. hospital_name
//  3. hospitalName
//  4. hospital.hospital_name
//  5. hospital.name
//  6. плейсхолдер UnknownHospital
func (r *EmergencyRequest) DisplayHospitalName() string {
	if r.RequesterName != "" {
		return r.RequesterName
	}
	if r.HospitalName != "" {
		return r.HospitalName
	}
	if r.HospitalNameAlt != "" {
		return r.HospitalNameAlt
	}
	if r.Hospital != nil {
		if r.Hospital.HospitalName != "" {
			return r.Hospital.HospitalName
		}
		if r.Hospital.Name != "" {
			return r.Hospital.Name
		}
	}
	return UnknownHospital
}

// DisplayLocation возвращает город запроса: city -> hospital.city -> "Emergency Unit"
func (r *EmergencyRequest) DisplayLocation() string {
	if r.City != "" {
		return r.City
	}
	if r.Hospital != nil && r.Hospital.City != "" {
		return r.Hospital.City
	}
	return "Emergency Unit"
}

// IsResponded сообщает, откликнулся ли уже донор на этот запрос
func (r *EmergencyRequest) IsResponded() bool {
	return r.Status == StatusResponded || r.Status == StatusDonorFound
}

// RespondRequest представляет отклик донора на экстренный запрос
type RespondRequest struct {
	RequestID string `json:"requestId"` // идентификатор запроса (UUID сервера)
}

// Hospital представляет партнерский госпиталь (read-only справочник)
// Контактный номер денормализован: бэкенд может отдать его под
// несколькими альтернативными ключами
type Hospital struct {
	ID            string  `json:"id"`
	HospitalName  string  `json:"hospital_name"`
	Address       string  `json:"address,omitempty"`
	Email         string  `json:"email,omitempty"`
	City          string  `json:"city,omitempty"`
	ContactNumber string  `json:"contact_number,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Contact       string  `json:"contact,omitempty"`
	PhoneNumber   string  `json:"phone_number,omitempty"`
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
	Lat           float64 `json:"lat,omitempty"`
	Lng           float64 `json:"lng,omitempty"`
}

// DisplayContactNumber возвращает контактный номер госпиталя.
// Порядок фолбэков: contact_number -> phone -> contact -> phone_number.
// Пустая строка означает, что госпиталь не указал номер.
func (h *Hospital) DisplayContactNumber() string {
	if h.ContactNumber != "" {
		return h.ContactNumber
	}
	if h.Phone != "" {
		return h.Phone
	}
	if h.Contact != "" {
		return h.Contact
	}
	return h.PhoneNumber
}

// DialNumber нормализует контактный номер для звонилки:
// убирает все символы кроме цифр и ведущего "+"
func (h *Hospital) DialNumber() string {
	raw := h.DisplayContactNumber()
	var b strings.Builder
	for _, c := range raw {
		if c >= '0' && c <= '9' || c == '+' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Coordinates возвращает координаты госпиталя.
// Фолбэк по ключам: latitude/longitude -> lat/lng.
// ok == false, когда координаты не заполнены.
func (h *Hospital) Coordinates() (lat, lng float64, ok bool) {
	if h.Latitude != 0 || h.Longitude != 0 {
		return h.Latitude, h.Longitude, true
	}
	if h.Lat != 0 || h.Lng != 0 {
		return h.Lat, h.Lng, true
	}
	return 0, 0, false
}

// MapsURL возвращает ссылку на карту для кнопки "как добраться".
// Пустая строка, когда координат нет.
func (h *Hospital) MapsURL() string {
	lat, lng, ok := h.Coordinates()
	if !ok {
		return ""
	}
	return fmt.Sprintf("https://maps.google.com/?q=%f,%f", lat, lng)
}

// Donation представляет завершенную донацию из истории донора
type Donation struct {
	HospitalName string `json:"hospital_name,omitempty"`
	CompletedAt  string `json:"completed_at,omitempty"`
	UnitsDonated int    `json:"units_donated,omitempty"`
}

// DisplayHospitalName возвращает имя госпиталя донации
// с фолбэком для старых записей без названия
func (d *Donation) DisplayHospitalName() string {
	if d.HospitalName != "" {
		return d.HospitalName
	}
	return "Emergency Donation"
}

// Units возвращает количество сданных единиц (минимум одна)
func (d *Donation) Units() int {
	if d.UnitsDonated > 0 {
		return d.UnitsDonated
	}
	return 1
}
