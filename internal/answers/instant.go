package answers

import (
	"fmt"

	"faqbot/internal/models"
	"faqbot/internal/validation"
)

// DefaultInstantResponses is the curated instant-response table. Order
// matters: keywords are scanned in definition order and the first substring
// hit wins, so more specific phrases go before their prefixes.
func DefaultInstantResponses() []models.InstantResponse {
	return []models.InstantResponse{
		{Keyword: "call up letter", Answer: "📄 To print your call-up letter:\n1. Visit https://portal.nysc.org.ng\n2. Login with your credentials\n3. Click 'Print Call-Up Letter' under dashboard"},
		{Keyword: "registration requirements", Answer: "📝 Camp registration requires:\n- Original credentials\n- Call-up letter\n- Medical certificate\n- 4 passport photos\n- Bank verification details"},
		{Keyword: "forgot portal password", Answer: "🔑 Reset your portal password:\n1. Go to https://portal.nysc.org.ng\n2. Click 'Forgot Password'\n3. Enter your registered email\n4. Check email for reset link"},
		{Keyword: "camp requirements", Answer: "🎒 Essential camp items:\n- Original credentials\n- White shorts/vest\n- Medical certificate\n- 4 passport photographs\n- Call-up letter printout"},
		{Keyword: "what to bring to camp", Answer: "🎒 Essential camp items:\n- White shorts/vest (5 pairs)\n- White tennis shoes\n- Bucket and toiletries\n- Mosquito net\n- Padlock\n- Writing materials"},
		{Keyword: "prohibited items", Answer: "🚫 Prohibited items in camp:\n- Weapons of any kind\n- Drugs/alcohol\n- Large electronics\n- Power banks >20,000mAh\n- Expensive jewelry"},
		{Keyword: "dress code", Answer: "👕 Camp dress code:\n- White shorts, white vest, white socks/shoes\n- No revealing outfits\n- No colored clothing during morning drills"},
		{Keyword: "camp accommodation", Answer: "🏠 Camp accommodation:\n- Hostels are provided\n- Bring bedsheet and pillow\n- Mosquito net is essential\n- Rooms are gender-separated"},
		{Keyword: "when will i get paid", Answer: "💵 Payment timeline:\n- First payment: 4-6 weeks after camp\n- Subsequent payments: Monthly\n- Delays? Contact your LG inspector"},
		{Keyword: "allowance", Answer: "💰 Allowance details:\n- Monthly allowance: ₦77,000\n- Paid between 25th-30th each month\n- First payment comes after documentation"},
		{Keyword: "daily schedule", Answer: "⏰ Typical camp day:\n5:30am - Morning drill\n7:30am - Breakfast\n8:30am - Lectures\n12pm - Lunch\n2pm - SAED training\n4pm - Sports\n9pm - Lights out"},
		{Keyword: "saed program", Answer: "💼 SAED Programs:\n1. Agriculture\n2. ICT\n3. Cosmetology\n4. Film Making\n5. Photography\n6. Fashion Design\nChoose one during registration"},
		{Keyword: "camp clinic", Answer: "🏥 Camp clinic services:\n- Basic medical care available\n- Bring personal medications\n- Emergency cases referred out\n- First aid available 24/7"},
		{Keyword: "ppa posting", Answer: "🏢 PPA Posting:\n- Assigned during camp\n- Can be changed within 2 weeks\n- Requires valid reasons\n- Submit request to LGI"},
		{Keyword: "redeployment", Answer: "🔄 Redeployment Process:\n1. Submit application to LGI\n2. Provide valid reasons (health, security, marriage)\n3. Wait for approval\nNote: Must be done within first 3 weeks"},
		{Keyword: "can i use phone in camp", Answer: "📱 Phone usage:\n- Allowed during free time\n- No phones during drills/lectures\n- Bring power banks (≤20,000mAh)\n- Charging ports limited"},
		{Keyword: "visitors policy", Answer: "👪 Visitor rules:\n- No visitors in hostels\n- Can meet at camp gate\n- Visiting hours: 4pm-6pm\n- Must show ID"},
		{Keyword: "how long is camp", Answer: "⏳ Camp duration:\n- Orientation lasts 3 weeks\n- Strictly residential\n- No early departure allowed\n- Certificate issued at end"},
		{Keyword: "what is mammy market", Answer: "🛒 Mammy Market:\n- Camp shopping area\n- Sells food, snacks, toiletries\n- Open after daily activities\n- Prices slightly higher"},
		{Keyword: "portal", Answer: "🌐 Portal: https://portal.nysc.org.ng\nForgot password? Use 'Recover Password' option with registered email"},
	}
}

// ValidateInstantResponses checks the table once at startup.
func ValidateInstantResponses(table []models.InstantResponse) error {
	seen := make(map[string]bool, len(table))
	for i, r := range table {
		if err := validation.ValidateInstantKeyword(r.Keyword); err != nil {
			return fmt.Errorf("instant response %d: %w", i, err)
		}
		if seen[r.Keyword] {
			return fmt.Errorf("instant response %d: duplicate keyword %q", i, r.Keyword)
		}
		seen[r.Keyword] = true
	}
	return nil
}
