package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/RaoulBonsso/GM/core/format"
	"github.com/RaoulBonsso/GM/core/school"
)

const generatedNote = "* Cette liste est générée automatiquement par le système de gestion scolaire."

// orDefault returns v, or def when v is empty.
func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orDash(v string) string {
	return orDefault(v, "-")
}

func dateOrDash(t time.Time) string {
	return orDash(format.Date(t))
}

func note([]school.Student) Caption {
	return Caption{Text: generatedNote, Align: AlignLeft}
}

var StudentListSpec = TabularReportSpec[school.Student]{
	Kind:       "students",
	Title:      "Liste des élèves",
	FilePrefix: "liste_eleves",
	Columns: []Column{
		{Header: "ID", Key: "id", Width: 15, Align: AlignCenter},
		{Header: "Nom", Key: "name", Width: 40},
		{Header: "Classe", Key: "class", Width: 20, Align: AlignCenter},
		{Header: "Genre", Key: "gender", Width: 20, Align: AlignCenter},
		{Header: "Date de naissance", Key: "dateOfBirth", Width: 30, Align: AlignCenter},
		{Header: "Parent", Key: "parentName", Width: 40},
		{Header: "Contact", Key: "parentContact", Width: 30},
		{Header: "Statut", Key: "status", Width: 20, Align: AlignCenter},
	},
	Project: func(s school.Student) Row {
		return Row{
			"id":            strconv.Itoa(s.ID),
			"name":          s.FullName(),
			"class":         s.ClassName,
			"gender":        s.Gender,
			"dateOfBirth":   format.Date(s.DateOfBirth),
			"parentName":    s.ParentName,
			"parentContact": s.ParentContact,
			"status":        s.Status,
		}
	},
	Subtitle: func(ss []school.Student) string {
		return fmt.Sprintf("Total: %d élèves", len(ss))
	},
	Summary: note,
}

var TeacherListSpec = TabularReportSpec[school.Teacher]{
	Kind:       "teachers",
	Title:      "Liste des enseignants",
	FilePrefix: "liste_enseignants",
	Columns: []Column{
		{Header: "ID", Key: "id", Width: 12, Align: AlignCenter},
		{Header: "Nom", Key: "name", Width: 32},
		{Header: "Matière", Key: "subject", Width: 25},
		{Header: "Email", Key: "email", Width: 40},
		{Header: "Téléphone", Key: "phone", Width: 22},
		{Header: "Qualification", Key: "qualification", Width: 30},
		{Header: "Date d'embauche", Key: "joiningDate", Width: 22, Align: AlignCenter},
		{Header: "Statut", Key: "status", Width: 17, Align: AlignCenter},
	},
	Project: func(t school.Teacher) Row {
		return Row{
			"id":            strconv.Itoa(t.ID),
			"name":          t.FullName(),
			"subject":       t.Subject,
			"email":         t.Email,
			"phone":         t.Phone,
			"qualification": t.Qualification,
			"joiningDate":   format.Date(t.JoiningDate),
			"status":        t.Status,
		}
	},
	Subtitle: func(ts []school.Teacher) string {
		return fmt.Sprintf("Total: %d enseignants", len(ts))
	},
	Summary: func([]school.Teacher) Caption {
		return Caption{Text: generatedNote, Align: AlignLeft}
	},
}

var ExpenseListSpec = TabularReportSpec[school.Expense]{
	Kind:       "expenses",
	Title:      "Liste des dépenses",
	FilePrefix: "liste_depenses",
	Columns: []Column{
		{Header: "ID", Key: "id", Width: 12, Align: AlignCenter},
		{Header: "Titre", Key: "title", Width: 45},
		{Header: "Montant", Key: "amount", Width: 25, Align: AlignRight},
		{Header: "Date", Key: "date", Width: 22, Align: AlignCenter},
		{Header: "Catégorie", Key: "category", Width: 24},
		{Header: "Méthode", Key: "paymentMethod", Width: 24},
		{Header: "Approuvé par", Key: "approvedBy", Width: 28},
		{Header: "Statut", Key: "status", Width: 20, Align: AlignCenter},
	},
	Project: func(e school.Expense) Row {
		return Row{
			"id":            strconv.Itoa(e.ID),
			"title":         e.Title,
			"amount":        format.Amount(e.Amount),
			"date":          format.Date(e.Date),
			"category":      e.Category,
			"paymentMethod": e.PaymentMethod,
			"approvedBy":    e.ApprovedBy,
			"status":        e.Status,
		}
	},
	Subtitle: func(es []school.Expense) string {
		return fmt.Sprintf("Total: %d dépenses | Montant total approuvé: %s", len(es), format.Amount(school.TotalApproved(es)))
	},
	Summary: func(es []school.Expense) Caption {
		return Caption{Text: "Total des dépenses approuvées: " + format.Amount(school.TotalApproved(es)), Bold: true, Align: AlignRight}
	},
	Values: func(e school.Expense) map[string]interface{} {
		return map[string]interface{}{"id": e.ID, "amount": e.Amount}
	},
}

var PaymentListSpec = TabularReportSpec[school.Payment]{
	Kind:       "payments",
	Title:      "Liste des paiements",
	FilePrefix: "liste_paiements",
	Columns: []Column{
		{Header: "ID", Key: "id", Width: 15, Align: AlignCenter},
		{Header: "Élève", Key: "studentName", Width: 35},
		{Header: "Classe", Key: "className", Width: 20, Align: AlignCenter},
		{Header: "Montant", Key: "amount", Width: 25, Align: AlignRight},
		{Header: "Date", Key: "date", Width: 25, Align: AlignCenter},
		{Header: "Description", Key: "description", Width: 30},
		{Header: "Méthode", Key: "paymentMethod", Width: 20, Align: AlignCenter},
		{Header: "Statut", Key: "status", Width: 20, Align: AlignCenter},
	},
	Project: func(p school.Payment) Row {
		return Row{
			"id":            strconv.Itoa(p.ID),
			"studentName":   p.StudentName,
			"className":     p.ClassName,
			"amount":        format.Amount(p.Amount),
			"date":          format.Date(p.Date),
			"description":   p.Description,
			"paymentMethod": p.PaymentMethod,
			"status":        p.Status,
		}
	},
	Subtitle: func(ps []school.Payment) string {
		return fmt.Sprintf("Total: %d paiements | Montant total: %s", len(ps), format.Amount(school.TotalPaid(ps)))
	},
	Summary: func(ps []school.Payment) Caption {
		return Caption{Text: "Total des paiements: " + format.Amount(school.TotalPaid(ps)), Bold: true, Align: AlignRight}
	},
	Values: func(p school.Payment) map[string]interface{} {
		return map[string]interface{}{"id": p.ID, "amount": p.Amount}
	},
}

var StudentDetailSpec = DetailReportSpec[school.Student]{
	Kind:       "student",
	Title:      "FICHE INDIVIDUELLE D'ÉLÈVE",
	FilePrefix: "fiche_eleve",
	LabelWidth: 45,
	Photo:      true,
	Signatures: []string{"Signature du Directeur", "Signature du Parent/Tuteur", "Date"},
	ID:         func(s school.Student) string { return strconv.Itoa(s.ID) },
	Layout: func(s school.Student, now time.Time) DetailLayout {
		year := format.AcademicYear(now)
		tuition := "-"
		if s.TuitionFee.IsPositive() {
			tuition = format.Amount(s.TuitionFee)
		}
		return DetailLayout{
			Subtitle: "Année scolaire " + year,
			Identity: &Identity{
				Name:  s.FullName(),
				ID:    strconv.Itoa(s.ID),
				Badge: "Classe: " + orDash(s.ClassName),
			},
			Sections: []Section{
				{
					Title:  "INFORMATIONS PERSONNELLES",
					Height: 70,
					Left: []Field{
						{"Genre", orDash(s.Gender)},
						{"Date de naissance", dateOrDash(s.DateOfBirth)},
						{"Lieu de naissance", orDash(s.BirthPlace)},
						{"Nationalité", orDash(s.Nationality)},
						{"Adresse", orDash(s.Address)},
					},
					Right: []Field{
						{"Statut", orDefault(s.Status, school.StudentActive)},
						{"Date d'inscription", dateOrDash(s.RegistrationDate)},
						{"Année scolaire", year},
						{"Email", orDash(s.Email)},
						{"Téléphone", orDash(s.Phone)},
					},
				},
				{
					Title:  "INFORMATIONS DU PARENT/TUTEUR",
					Height: 60,
					Left: []Field{
						{"Nom du parent/tuteur", orDash(s.ParentName)},
						{"Profession", orDash(s.ParentProfession)},
						{"Relation avec l'élève", orDefault(s.ParentRelationship, "Parent")},
					},
					Right: []Field{
						{"Téléphone", orDash(s.ParentContact)},
						{"Email", orDash(s.ParentEmail)},
						{"Adresse", orDash(orDefault(s.ParentAddress, s.Address))},
					},
				},
				{
					Title:  "INFORMATIONS FINANCIÈRES",
					Height: 30,
					Left:   []Field{{"Frais de scolarité", tuition}},
					Right:  []Field{{"Mode de paiement", orDefault(s.PaymentMethod, "Non spécifié")}},
				},
			},
		}
	},
}

var TeacherDetailSpec = DetailReportSpec[school.Teacher]{
	Kind:       "teacher",
	Title:      "Fiche individuelle d'enseignant",
	FilePrefix: "fiche_enseignant",
	LabelWidth: 35,
	Photo:      true,
	Signatures: []string{"Signature du Directeur", "Date"},
	ID:         func(t school.Teacher) string { return strconv.Itoa(t.ID) },
	Layout: func(t school.Teacher, _ time.Time) DetailLayout {
		return DetailLayout{
			Subtitle: t.FullName(),
			Identity: &Identity{
				Name:  t.FullName(),
				ID:    strconv.Itoa(t.ID),
				Badge: "Matière: " + orDash(t.Subject),
			},
			Sections: []Section{
				{
					Title:  "INFORMATIONS PERSONNELLES",
					Height: 50,
					Left: []Field{
						{"ID", strconv.Itoa(t.ID)},
						{"Nom complet", orDash(t.FullName())},
						{"Qualification", orDash(t.Qualification)},
						{"Date d'embauche", dateOrDash(t.JoiningDate)},
					},
					Right: []Field{
						{"Matière", orDash(t.Subject)},
						{"Statut", orDefault(t.Status, school.TeacherActive)},
					},
				},
				{
					Title:  "INFORMATIONS DE CONTACT",
					Height: 40,
					Left: []Field{
						{"Email", orDash(t.Email)},
						{"Téléphone", orDash(t.Phone)},
					},
				},
			},
		}
	},
}

var ExpenseDetailSpec = DetailReportSpec[school.Expense]{
	Kind:       "expense",
	Title:      "Détails de la dépense",
	FilePrefix: "details_depense",
	Flat:       true,
	ID:         func(e school.Expense) string { return strconv.Itoa(e.ID) },
	Layout: func(e school.Expense, _ time.Time) DetailLayout {
		details := []Field{
			{"Date", dateOrDash(e.Date)},
			{"Catégorie", orDash(e.Category)},
			{"Méthode de paiement", orDash(e.PaymentMethod)},
			{"Statut", orDash(e.Status)},
		}
		if e.IsApproved() {
			details = append(details, Field{"Approuvé par", orDash(e.ApprovedBy)})
		}
		return DetailLayout{
			Subtitle: "ID: " + strconv.Itoa(e.ID),
			Sections: []Section{
				{Left: []Field{
					{"Titre", orDash(e.Title)},
					{"Montant", format.Amount(e.Amount)},
				}},
				{Title: "Informations détaillées", Left: details},
			},
		}
	},
}

var PaymentDetailSpec = DetailReportSpec[school.Payment]{
	Kind:       "payment",
	Title:      "Détails du paiement",
	FilePrefix: "details_paiement",
	Flat:       true,
	ID:         func(p school.Payment) string { return strconv.Itoa(p.ID) },
	Layout: func(p school.Payment, _ time.Time) DetailLayout {
		return DetailLayout{
			Subtitle: "ID: " + strconv.Itoa(p.ID),
			Sections: []Section{
				{
					Title: "Informations de l'élève",
					Left: []Field{
						{"Nom", orDash(p.StudentName)},
						{"Classe", orDash(p.ClassName)},
						{"ID", strconv.Itoa(p.StudentID)},
					},
				},
				{
					Title: "Informations du paiement",
					Left: []Field{
						{"Montant", format.Amount(p.Amount)},
						{"Date", dateOrDash(p.Date)},
						{"Description", orDash(p.Description)},
						{"Méthode de paiement", orDash(p.PaymentMethod)},
						{"Statut", orDash(p.Status)},
					},
				},
			},
		}
	},
}
