package countries

var entries = []Country{
	{Name: "Argentina", ISO2: "AR", DialCode: "+54"},
	{Name: "Australia", ISO2: "AU", DialCode: "+61"},
	{Name: "Austria", ISO2: "AT", DialCode: "+43"},
	{Name: "Belgium", ISO2: "BE", DialCode: "+32"},
	{Name: "Brazil", ISO2: "BR", DialCode: "+55"},
	{Name: "Bulgaria", ISO2: "BG", DialCode: "+359"},
	{Name: "Canada", ISO2: "CA", DialCode: "+1"},
	{Name: "Chile", ISO2: "CL", DialCode: "+56"},
	{Name: "China", ISO2: "CN", DialCode: "+86"},
	{Name: "Colombia", ISO2: "CO", DialCode: "+57"},
	{Name: "Croatia", ISO2: "HR", DialCode: "+385"},
	{Name: "Czech Republic", ISO2: "CZ", DialCode: "+420"},
	{Name: "Denmark", ISO2: "DK", DialCode: "+45"},
	{Name: "Egypt", ISO2: "EG", DialCode: "+20"},
	{Name: "Estonia", ISO2: "EE", DialCode: "+372"},
	{Name: "Finland", ISO2: "FI", DialCode: "+358"},
	{Name: "France", ISO2: "FR", DialCode: "+33"},
	{Name: "Germany", ISO2: "DE", DialCode: "+49"},
	{Name: "Greece", ISO2: "GR", DialCode: "+30"},
	{Name: "Hong Kong", ISO2: "HK", DialCode: "+852"},
	{Name: "Hungary", ISO2: "HU", DialCode: "+36"},
	{Name: "Iceland", ISO2: "IS", DialCode: "+354"},
	{Name: "India", ISO2: "IN", DialCode: "+91"},
	{Name: "Indonesia", ISO2: "ID", DialCode: "+62"},
	{Name: "Ireland", ISO2: "IE", DialCode: "+353"},
	{Name: "Israel", ISO2: "IL", DialCode: "+972"},
	{Name: "Italy", ISO2: "IT", DialCode: "+39"},
	{Name: "Japan", ISO2: "JP", DialCode: "+81"},
	{Name: "Kenya", ISO2: "KE", DialCode: "+254"},
	{Name: "Luxembourg", ISO2: "LU", DialCode: "+352"},
	{Name: "Malaysia", ISO2: "MY", DialCode: "+60"},
	{Name: "Mexico", ISO2: "MX", DialCode: "+52"},
	{Name: "Netherlands", ISO2: "NL", DialCode: "+31"},
	{Name: "New Zealand", ISO2: "NZ", DialCode: "+64"},
	{Name: "Norway", ISO2: "NO", DialCode: "+47"},
	{Name: "Pakistan", ISO2: "PK", DialCode: "+92"},
	{Name: "Philippines", ISO2: "PH", DialCode: "+63"},
	{Name: "Poland", ISO2: "PL", DialCode: "+48"},
	{Name: "Portugal", ISO2: "PT", DialCode: "+351"},
	{Name: "Qatar", ISO2: "QA", DialCode: "+974"},
	{Name: "Romania", ISO2: "RO", DialCode: "+40"},
	{Name: "Russia", ISO2: "RU", DialCode: "+7"},
	{Name: "Saudi Arabia", ISO2: "SA", DialCode: "+966"},
	{Name: "Singapore", ISO2: "SG", DialCode: "+65"},
	{Name: "Slovakia", ISO2: "SK", DialCode: "+421"},
	{Name: "Slovenia", ISO2: "SI", DialCode: "+386"},
	{Name: "South Africa", ISO2: "ZA", DialCode: "+27"},
	{Name: "South Korea", ISO2: "KR", DialCode: "+82"},
	{Name: "Spain", ISO2: "ES", DialCode: "+34"},
	{Name: "Sweden", ISO2: "SE", DialCode: "+46"},
	{Name: "Switzerland", ISO2: "CH", DialCode: "+41"},
	{Name: "Taiwan", ISO2: "TW", DialCode: "+886"},
	{Name: "Thailand", ISO2: "TH", DialCode: "+66"},
	{Name: "Turkey", ISO2: "TR", DialCode: "+90"},
	{Name: "Ukraine", ISO2: "UA", DialCode: "+380"},
	{Name: "United Arab Emirates", ISO2: "AE", DialCode: "+971"},
	{Name: "United Kingdom", ISO2: "GB", DialCode: "+44"},
	{Name: "United States", ISO2: "US", DialCode: "+1"},
	{Name: "Vietnam", ISO2: "VN", DialCode: "+84"},
}
