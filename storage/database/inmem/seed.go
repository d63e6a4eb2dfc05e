package inmemdb

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/RaoulBonsso/GM/core/school"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// Seed fills the tables with the demo school data. Primary keys start at 1 in insertion order.
func Seed(db *DB) {
	classes := []school.Class{
		{Name: "CM2", Level: "Primaire", Teacher: "M. Souleymane Bah", Students: 32, Boys: 18, Girls: 14, AcademicYear: "2024-2025"},
		{Name: "CE1", Level: "Primaire", Teacher: "Mme. Fatoumata Camara", Students: 28, Boys: 15, Girls: 13, AcademicYear: "2024-2025"},
		{Name: "CM1", Level: "Primaire", Teacher: "M. Ibrahima Diallo", Students: 30, Boys: 16, Girls: 14, AcademicYear: "2024-2025"},
		{Name: "CE2", Level: "Primaire", Teacher: "Mme. Mariama Sow", Students: 25, Boys: 12, Girls: 13, AcademicYear: "2024-2025"},
		{Name: "CP", Level: "Primaire", Teacher: "M. Ousmane Barry", Students: 22, Boys: 10, Girls: 12, AcademicYear: "2024-2025"},
	}
	for _, c := range classes {
		db.class.create(c)
	}

	fee := amount(225000)
	students := []school.Student{
		{
			FirstName: "Amadou", LastName: "Diallo", ClassID: 1, ClassName: "CM2", Gender: school.GenderMale,
			DateOfBirth: date(2014, time.May, 12), BirthPlace: "Conakry", Nationality: "Guinéenne",
			Address: "123 Rue Principale, Conakry", Status: school.StudentActive, RegistrationDate: date(2024, time.September, 1),
			ParentName: "Mamadou Diallo", ParentContact: "620123456", ParentEmail: "mamadou.diallo@example.com",
			ParentProfession: "Commerçant", ParentRelationship: "Père", TuitionFee: fee, PaymentMethod: "Espèces",
		},
		{
			FirstName: "Fatou", LastName: "Sow", ClassID: 2, ClassName: "CE1", Gender: school.GenderFemale,
			DateOfBirth: date(2017, time.March, 22), BirthPlace: "Conakry", Nationality: "Guinéenne",
			Status: school.StudentActive, RegistrationDate: date(2024, time.September, 1),
			ParentName: "Aissatou Sow", ParentContact: "621789012", TuitionFee: fee, PaymentMethod: "Virement bancaire",
		},
		{
			FirstName: "Mamadou", LastName: "Bah", ClassID: 3, ClassName: "CM1", Gender: school.GenderMale,
			DateOfBirth: date(2015, time.November, 5), BirthPlace: "Kindia", Nationality: "Guinéenne",
			Status: school.StudentActive, RegistrationDate: date(2024, time.September, 1),
			ParentName: "Ibrahima Bah", ParentContact: "622345678", TuitionFee: fee, PaymentMethod: "Mobile Money",
		},
		{
			FirstName: "Aissatou", LastName: "Barry", ClassID: 4, ClassName: "CE2", Gender: school.GenderFemale,
			DateOfBirth: date(2016, time.July, 18), BirthPlace: "Labé", Nationality: "Guinéenne",
			Status: school.StudentActive, RegistrationDate: date(2025, time.March, 1),
			ParentName: "Mariama Barry", ParentContact: "623456789", TuitionFee: fee, PaymentMethod: "Chèque",
		},
		{
			FirstName: "Ousmane", LastName: "Camara", ClassID: 1, ClassName: "CM2", Gender: school.GenderMale,
			DateOfBirth: date(2014, time.February, 28), BirthPlace: "Conakry", Nationality: "Guinéenne",
			Status: school.StudentActive, RegistrationDate: date(2024, time.September, 1),
			ParentName: "Abdoulaye Camara", ParentContact: "624567890", TuitionFee: fee,
		},
	}
	for _, s := range students {
		db.student.create(s)
	}

	teachers := []school.Teacher{
		{FirstName: "Souleymane", LastName: "Bah", Subject: "Mathématiques", Email: "souleymane.bah@example.com", Phone: "620123456", Qualification: "Master en Mathématiques", JoiningDate: date(2020, time.September, 1), Status: school.TeacherActive},
		{FirstName: "Fatoumata", LastName: "Camara", Subject: "Français", Email: "fatoumata.camara@example.com", Phone: "620789012", Qualification: "Licence en Lettres Modernes", JoiningDate: date(2018, time.September, 1), Status: school.TeacherActive},
		{FirstName: "Ibrahima", LastName: "Diallo", Subject: "Sciences", Email: "ibrahima.diallo@example.com", Phone: "620345678", Qualification: "Master en Biologie", JoiningDate: date(2019, time.September, 1), Status: school.TeacherActive},
		{FirstName: "Mariama", LastName: "Sow", Subject: "Histoire-Géographie", Email: "mariama.sow@example.com", Phone: "620901234", Qualification: "Licence en Histoire", JoiningDate: date(2021, time.September, 1), Status: school.TeacherActive},
		{FirstName: "Ousmane", LastName: "Barry", Subject: "Éducation Physique", Email: "ousmane.barry@example.com", Phone: "620567890", Qualification: "Diplôme STAPS", JoiningDate: date(2017, time.September, 1), Status: school.TeacherOnLeave},
	}
	for _, t := range teachers {
		db.teacher.create(t)
	}

	expenses := []school.Expense{
		{Title: "Achat de fournitures scolaires", Amount: amount(250000), Date: date(2024, time.September, 5), Category: "Fournitures", PaymentMethod: "Espèces", ApprovedBy: "Mamadou Diallo", Status: school.ExpenseApproved},
		{Title: "Réparation de climatiseurs", Amount: amount(150000), Date: date(2024, time.September, 10), Category: "Maintenance", PaymentMethod: "Chèque", ApprovedBy: "Mamadou Diallo", Status: school.ExpenseApproved},
		{Title: "Salaires des enseignants - Septembre", Amount: amount(3500000), Date: date(2024, time.September, 30), Category: "Salaires", PaymentMethod: "Virement bancaire", ApprovedBy: "Mamadou Diallo", Status: school.ExpenseApproved},
		{Title: "Achat de nouveaux ordinateurs", Amount: amount(1200000), Date: date(2024, time.October, 5), Category: "Équipement", PaymentMethod: "Chèque", Status: school.ExpensePending},
		{Title: "Rénovation de la cantine", Amount: amount(500000), Date: date(2024, time.October, 10), Category: "Infrastructure", PaymentMethod: "Virement bancaire", Status: school.ExpenseRejected},
	}
	for _, e := range expenses {
		db.expense.create(e)
	}

	const tuition = "Frais de scolarité - 1er trimestre"
	payments := []school.Payment{
		{StudentID: 1, StudentName: "Amadou Diallo", ClassName: "CM2", Amount: amount(75000), Date: date(2024, time.September, 1), Description: tuition, PaymentMethod: "Espèces", Status: school.PaymentPaid},
		{StudentID: 2, StudentName: "Fatou Sow", ClassName: "CE1", Amount: amount(75000), Date: date(2024, time.September, 5), Description: tuition, PaymentMethod: "Virement bancaire", Status: school.PaymentPaid},
		{StudentID: 3, StudentName: "Mamadou Bah", ClassName: "CM1", Amount: amount(75000), Date: date(2024, time.September, 10), Description: tuition, PaymentMethod: "Mobile Money", Status: school.PaymentPaid},
		{StudentID: 4, StudentName: "Aissatou Barry", ClassName: "CE2", Amount: amount(75000), Date: date(2024, time.September, 15), Description: tuition, PaymentMethod: "Chèque", Status: school.PaymentPending},
		{StudentID: 5, StudentName: "Ousmane Camara", ClassName: "CP", Amount: amount(75000), Date: date(2024, time.September, 20), Description: tuition, PaymentMethod: "Espèces", Status: school.PaymentCancelled},
	}
	for _, p := range payments {
		db.payment.create(p)
	}
}
