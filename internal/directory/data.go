package directory

// Nodal officer directory for major banks and payment apps in India.
// RBI-mandated contacts for cyber fraud reporting.
var nodalOfficers = []Contact{
	{
		ID:          1,
		BankName:    "Bank of Maharashtra",
		Region:      "Head Office (Recovery)",
		OfficerName: "CGM Recovery",
		Email:       "cgmrecovery@bankofmaharashtra.bank.in",
		Phone:       "020-25614252",
		Priority:    PriorityHigh,
	},
	{
		ID:          2,
		BankName:    "Bank of Maharashtra",
		Region:      "Mumbai City Zone",
		OfficerName: "DZM Mumbai",
		Email:       "dzmmcz@bankofmaharashtra.bank.in",
		Phone:       "022-22671568",
		Priority:    PriorityHigh,
	},
	{
		ID:          3,
		BankName:    "State Bank of India",
		Region:      "Nodal Officer (Cyber)",
		OfficerName: "AGM Nodal Cyber",
		Email:       "agm.nodcyb@sbi.co.in",
		Phone:       "1800-111-109",
		Priority:    PriorityHigh,
	},
	{
		ID:          4,
		BankName:    "HDFC Bank",
		Region:      "Pension/Nodal Dept",
		OfficerName: "Ajay Prabhakar",
		Email:       "ajay.prabhakar@hdfcbank.com",
		Phone:       "022-61606161",
		Priority:    PriorityHigh,
	},
	{
		ID:          5,
		BankName:    "ICICI Bank",
		Region:      "Corporate Head Office",
		OfficerName: "Vinayak More",
		Email:       "vinayak.more@icicibank.com",
		Phone:       "022-26536536",
		Priority:    PriorityHigh,
	},
	{
		ID:          6,
		BankName:    "Axis Bank",
		Region:      "Nodal Officer Cyber",
		OfficerName: "Nodal Officer",
		Email:       "nodal.officer@axisbank.com",
		Phone:       "1800-419-5555",
		Priority:    PriorityMedium,
	},
	{
		ID:          7,
		BankName:    "Punjab National Bank",
		Region:      "Cyber Cell",
		OfficerName: "Chief Manager Cyber",
		Email:       "cybercell@pnb.co.in",
		Phone:       "1800-180-2222",
		Priority:    PriorityMedium,
	},
	{
		ID:          8,
		BankName:    "Kotak Mahindra Bank",
		Region:      "Nodal Officer",
		OfficerName: "Nodal Officer",
		Email:       "nodal.officer@kotak.com",
		Phone:       "1800-266-2666",
		Priority:    PriorityMedium,
	},
	{
		ID:          9,
		BankName:    "Canara Bank",
		Region:      "Cyber Security",
		OfficerName: "AGM Cyber Security",
		Email:       "agmcyber@canarabank.com",
		Phone:       "1800-425-0018",
		Priority:    PriorityMedium,
	},
	{
		ID:          10,
		BankName:    "Union Bank of India",
		Region:      "Nodal Officer",
		OfficerName: "Nodal Officer Cyber",
		Email:       "nodalofficer@unionbankofindia.bank",
		Phone:       "1800-222-244",
		Priority:    PriorityMedium,
	},
	{
		ID:          11,
		BankName:    "Paytm Payments Bank",
		Region:      "Fraud Prevention",
		OfficerName: "Nodal Officer",
		Email:       "nodalofficer@paytm.com",
		Phone:       "0120-4456456",
		Priority:    PriorityHigh,
	},
	{
		ID:          12,
		BankName:    "PhonePe",
		Region:      "Trust & Safety",
		OfficerName: "Grievance Officer",
		Email:       "grievance@phonepe.com",
		Phone:       "080-68727374",
		Priority:    PriorityHigh,
	},
	{
		ID:          13,
		BankName:    "Google Pay (GPay)",
		Region:      "User Safety",
		OfficerName: "Grievance Officer India",
		Email:       "support-in@google.com",
		Phone:       "1800-419-0157",
		Priority:    PriorityHigh,
	},
}

// Scam taxonomy based on common fraud patterns reported to the 1930 helpline
var scamTypes = []ScamType{
	{
		ID:          "digital_arrest",
		Name:        "Digital Arrest Scam",
		Description: "Fraudster impersonates police/CBI/customs officer, claims victim is involved in crime",
		Keywords:    []string{"arrest", "police", "cbi", "customs", "parcel", "drugs", "money laundering", "warrant"},
		Urgency:     UrgencyCritical,
		TypicalLoss: "₹1-50 lakhs",
	},
	{
		ID:          "investment_scam",
		Name:        "Investment/Trading Scam",
		Description: "Fake investment apps, crypto schemes, stock trading with guaranteed returns",
		Keywords:    []string{"investment", "trading", "crypto", "bitcoin", "returns", "profit", "stock", "mutual fund"},
		Urgency:     UrgencyHigh,
		TypicalLoss: "₹5-100 lakhs",
	},
	{
		ID:          "upi_fraud",
		Name:        "UPI/Payment Fraud",
		Description: "Fake payment requests, QR code scams, UPI PIN theft",
		Keywords:    []string{"upi", "gpay", "phonepe", "paytm", "qr code", "payment", "request", "pin"},
		Urgency:     UrgencyCritical,
		TypicalLoss: "₹5,000-2 lakhs",
	},
	{
		ID:          "loan_app_fraud",
		Name:        "Loan App Fraud",
		Description: "Illegal loan apps with excessive interest, harassment, morphed photos blackmail",
		Keywords:    []string{"loan", "app", "interest", "emi", "harassment", "photos", "contact list", "blackmail"},
		Urgency:     UrgencyHigh,
		TypicalLoss: "₹10,000-5 lakhs",
	},
	{
		ID:          "otp_fraud",
		Name:        "OTP/Vishing Fraud",
		Description: "Social engineering to steal OTP, bank credentials via phone calls",
		Keywords:    []string{"otp", "call", "bank", "kyc", "update", "card blocked", "account", "verify"},
		Urgency:     UrgencyCritical,
		TypicalLoss: "₹10,000-10 lakhs",
	},
	{
		ID:          "job_fraud",
		Name:        "Job/Task Fraud",
		Description: "Fake job offers requiring upfront payment, work-from-home task scams",
		Keywords:    []string{"job", "work from home", "task", "rating", "review", "commission", "hiring", "salary"},
		Urgency:     UrgencyMedium,
		TypicalLoss: "₹20,000-5 lakhs",
	},
	{
		ID:          "sextortion",
		Name:        "Sextortion/Romance Scam",
		Description: "Blackmail using intimate content, fake relationships for money",
		Keywords:    []string{"video call", "nude", "intimate", "relationship", "marriage", "blackmail", "viral"},
		Urgency:     UrgencyHigh,
		TypicalLoss: "₹50,000-10 lakhs",
	},
	{
		ID:          "tech_support",
		Name:        "Tech Support Scam",
		Description: "Fake tech support calls, remote access software installation",
		Keywords:    []string{"tech support", "anydesk", "teamviewer", "remote", "virus", "microsoft", "refund"},
		Urgency:     UrgencyMedium,
		TypicalLoss: "₹10,000-5 lakhs",
	},
	{
		ID:          "courier_scam",
		Name:        "Courier/Customs Scam",
		Description: "Fake courier companies claiming package held, demanding fees",
		Keywords:    []string{"courier", "fedex", "dhl", "customs", "package", "held", "fee", "clearance"},
		Urgency:     UrgencyMedium,
		TypicalLoss: "₹5,000-1 lakh",
	},
	{
		ID:          "other",
		Name:        "Other Cyber Fraud",
		Description: "Other types of cyber fraud not categorized above",
		Keywords:    []string{},
		Urgency:     UrgencyMedium,
		TypicalLoss: "Variable",
	},
}

// Flagged-suspect registry (I4C repository snapshot)
var flaggedSuspects = []FlaggedSuspect{
	{Kind: SuspectPhone, Value: "9876543210", Reports: 45, Status: StatusConfirmedFraud},
	{Kind: SuspectPhone, Value: "8765432109", Reports: 23, Status: StatusSuspected},
	{Kind: SuspectPhone, Value: "7654321098", Reports: 67, Status: StatusConfirmedFraud},
	{Kind: SuspectURL, Value: "fake-trading-app.com", Reports: 120, Status: StatusConfirmedFraud},
	{Kind: SuspectURL, Value: "quick-loan-india.in", Reports: 89, Status: StatusConfirmedFraud},
	{Kind: SuspectUPI, Value: "scammer@ybl", Reports: 34, Status: StatusSuspected},
}
