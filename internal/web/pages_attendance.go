package web

import (
	"net/http"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/attendance"
	"github.com/hgiang7193/hr-management/internal/transport"
)

type AttendancePages struct {
	renderer *Renderer
	service  attendance.ServiceAPI
}

func NewAttendancePages(renderer *Renderer, service attendance.ServiceAPI) *AttendancePages {
	return &AttendancePages{renderer: renderer, service: service}
}

// Index shows the user's own records; admins see everyone's.
func (p *AttendancePages) Index(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok {
		redirectToLogin(w, r)
		return
	}

	var records []*attendance.Attendance
	var err error
	if user.IsAdmin() {
		records, err = p.service.GetAll()
	} else {
		records, err = p.service.GetForEmployee(user.ID)
	}
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	p.renderer.Render(w, r, "attendance/index", "Attendance", records)
}

// Details shows one record. Non-admins may only open their own.
func (p *AttendancePages) Details(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok {
		redirectToLogin(w, r)
		return
	}

	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	a, err := p.service.GetByID(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if !user.CanAccessRecordOf(a.EmployeeID) {
		http.Redirect(w, r, "/Auth/AccessDenied", http.StatusSeeOther)
		return
	}
	p.renderer.Render(w, r, "attendance/details", "Attendance record", a)
}

func (p *AttendancePages) CreateForm(w http.ResponseWriter, r *http.Request) {
	p.renderer.Render(w, r, "attendance/form", "New attendance record", nil)
}

func (p *AttendancePages) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	employeeID, err := formInt64(r, "employee_id")
	if err != nil {
		p.renderer.Flash(w, r, "Employee is required.")
		http.Redirect(w, r, "/Attendance/Create", http.StatusSeeOther)
		return
	}

	workDate := formOptionalDate(r, "work_date")
	if workDate == nil {
		p.renderer.Flash(w, r, "Work date is required.")
		http.Redirect(w, r, "/Attendance/Create", http.StatusSeeOther)
		return
	}

	dto := attendance.CreateAttendanceDTO{
		EmployeeID:   employeeID,
		WorkDate:     *workDate,
		CheckInTime:  formOptionalDateTime(r, "check_in_time"),
		CheckOutTime: formOptionalDateTime(r, "check_out_time"),
		Status:       r.PostFormValue("status"),
	}

	if _, err := p.service.Create(dto); err != nil {
		p.renderer.FlashError(w, r, err)
		http.Redirect(w, r, "/Attendance/Create", http.StatusSeeOther)
		return
	}

	p.renderer.Flash(w, r, "Attendance record created.")
	http.Redirect(w, r, "/Attendance", http.StatusSeeOther)
}

func (p *AttendancePages) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	a, err := p.service.GetByID(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	p.renderer.Render(w, r, "attendance/form", "Edit attendance record", a)
}

func (p *AttendancePages) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	bodyID, err := formInt64(r, "id")
	if err != nil || bodyID != id {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	dto := attendance.UpdateAttendanceDTO{
		CheckInTime:  formOptionalDateTime(r, "check_in_time"),
		CheckOutTime: formOptionalDateTime(r, "check_out_time"),
	}
	if status := r.PostFormValue("status"); status != "" {
		dto.Status = &status
	}

	if _, err := p.service.Update(id, dto); err != nil {
		p.renderer.FlashError(w, r, err)
		http.Redirect(w, r, "/Attendance/Edit/"+formatID(id), http.StatusSeeOther)
		return
	}

	p.renderer.Flash(w, r, "Attendance record updated.")
	http.Redirect(w, r, "/Attendance", http.StatusSeeOther)
}

func (p *AttendancePages) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := p.service.Delete(id); err != nil {
		p.renderer.FlashError(w, r, err)
	} else {
		p.renderer.Flash(w, r, "Attendance record deleted.")
	}
	http.Redirect(w, r, "/Attendance", http.StatusSeeOther)
}

func (p *AttendancePages) CheckIn(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok {
		redirectToLogin(w, r)
		return
	}

	result, err := p.service.CheckIn(user.ID)
	if err != nil {
		p.renderer.Flash(w, r, "Check-in failed.")
		http.Redirect(w, r, "/Attendance", http.StatusSeeOther)
		return
	}

	switch result.Outcome {
	case attendance.OutcomeAlreadyCheckedIn:
		p.renderer.Flash(w, r, "You have already checked in today.")
	case attendance.OutcomeCheckedIn:
		if result.Attendance.Status == attendance.StatusLate {
			p.renderer.Flash(w, r, "Checked in late.")
		} else {
			p.renderer.Flash(w, r, "Checked in on time.")
		}
	}
	http.Redirect(w, r, "/Attendance", http.StatusSeeOther)
}

func (p *AttendancePages) CheckOut(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok {
		redirectToLogin(w, r)
		return
	}

	result, err := p.service.CheckOut(user.ID)
	if err != nil {
		p.renderer.Flash(w, r, "Check-out failed.")
		http.Redirect(w, r, "/Attendance", http.StatusSeeOther)
		return
	}

	switch result.Outcome {
	case attendance.OutcomeNotCheckedIn:
		p.renderer.Flash(w, r, "You have not checked in today.")
	case attendance.OutcomeAlreadyCheckedOut:
		p.renderer.Flash(w, r, "You have already checked out today.")
	case attendance.OutcomeCheckedOut:
		p.renderer.Flash(w, r, "Checked out.")
	}
	http.Redirect(w, r, "/Attendance", http.StatusSeeOther)
}
