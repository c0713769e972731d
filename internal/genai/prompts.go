package genai

const classifyPrompt = `You are an expert cyber crime analyst for Maharashtra Cyber Police.
Analyze the following fraud complaint and classify it into one of these categories:

SCAM CATEGORIES:
1. digital_arrest - Impersonation of police/CBI/customs, fake arrest threats
2. investment_scam - Fake trading apps, crypto schemes, guaranteed returns
3. upi_fraud - Fake payment requests, QR code scams, UPI PIN theft
4. loan_app_fraud - Illegal loan apps, harassment, blackmail
5. otp_fraud - Social engineering for OTP/bank credentials
6. job_fraud - Fake job offers, work-from-home task scams
7. sextortion - Blackmail with intimate content, romance scams
8. tech_support - Fake tech support, remote access scams
9. courier_scam - Fake courier/customs holding package
10. other - Other cyber fraud

USER COMPLAINT:
%s

Respond ONLY with valid JSON (no markdown, no code blocks) with these fields:
{"scam_type": "category_id from above", "confidence": 0.0-1.0, "reasoning": "brief explanation", "urgency": "critical/high/medium/low", "key_indicators": ["indicator1", "indicator2"]}`

const draftPrompt = `You are an expert complaint writer for Maharashtra Cyber Police.
Generate a formal cyber fraud complaint report based on the following details.

The report MUST be at least 200 characters (mandatory for NCRP portal).

CASE DETAILS:
- Scam Type: %s
- Description: %s
- Amount Lost: Rs.%.0f
- Transaction Reference (UTR): %s
- Bank Involved: %s
- Suspect Phone: %s
- Suspect URL/App: %s
- Date of Incident: %s

Evidence Quality Score: %d/100

Generate the report in valid JSON format (no markdown, no code blocks):
{"report_title": "Brief title for the complaint", "report_body": "Detailed complaint text (minimum 200 characters). Include all relevant details, timeline, and transaction information. Write formally.", "key_evidence": ["list", "of", "key", "evidence", "points"], "recommended_actions": ["action1", "action2"], "priority_level": "critical/high/medium/low"}`
